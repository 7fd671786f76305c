package main

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func Test_SelectDistribution(t *testing.T) {
	Convey("SelectDistribution()", t, func() {
		Convey("returns the default preset", func() {
			dist := SelectDistribution(false)

			So(dist.Name, ShouldEqual, "default")
			So(dist.Location, ShouldEqual, 3.0)
			So(dist.Scale, ShouldEqual, 2.3)
		})

		Convey("returns the large preset", func() {
			dist := SelectDistribution(true)

			So(dist.Name, ShouldEqual, "large")
			So(dist.Location, ShouldEqual, 5.2)
			So(dist.Scale, ShouldEqual, 3.2)
		})
	})
}

func Test_Sampler(t *testing.T) {
	Convey("Sampler()", t, func() {
		Convey("draws are positive and independent", func() {
			sample := DefaultDistribution.Sampler(rand.New(rand.NewSource(1)))

			seen := make(map[float64]bool, 1000)
			smallest := math.Inf(1)
			for i := 0; i < 1000; i++ {
				v := sample()
				seen[v] = true
				if v < smallest {
					smallest = v
				}
			}

			So(smallest, ShouldBeGreaterThan, 0)
			So(len(seen), ShouldEqual, 1000)
		})

		Convey("draws straddle the log-normal median", func() {
			sample := DefaultDistribution.Sampler(rand.New(rand.NewSource(2)))

			// The median of the default distribution is e^Location
			below := 0
			for i := 0; i < 10000; i++ {
				if sample() < math.Exp(DefaultDistribution.Location) {
					below++
				}
			}

			So(below, ShouldBeBetween, 4500, 5500)
		})

		Convey("large mode draws run bigger on average", func() {
			small := DefaultDistribution.Sampler(rand.New(rand.NewSource(3)))
			large := LargeDistribution.Sampler(rand.New(rand.NewSource(3)))

			var smallMedian, largeMedian []float64
			for i := 0; i < 1001; i++ {
				smallMedian = append(smallMedian, small())
				largeMedian = append(largeMedian, large())
			}
			sort.Float64s(smallMedian)
			sort.Float64s(largeMedian)

			So(largeMedian[500], ShouldBeGreaterThan, smallMedian[500])
		})

		Convey("is reproducible for a fixed seed", func() {
			a := DefaultDistribution.Sampler(rand.New(rand.NewSource(42)))
			b := DefaultDistribution.Sampler(rand.New(rand.NewSource(42)))

			for i := 0; i < 10; i++ {
				So(a(), ShouldEqual, b())
			}
		})
	})
}
