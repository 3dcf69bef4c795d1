// Package route handles candidate routes through a generated instance.
//
// A route is the sequence of city indices a tour visits, written as
// whitespace-separated integers ("0 3 1 2"). The package parses it, checks
// it against the instance size, and measures it over the Euclidean distance
// matrix:
//
//	r, _ := route.Parse("0 3 1 2")
//	sum, err := route.Summarize(inst.DistanceMatrix(), r, route.DefaultSpeed, true)
//	fmt.Println(sum.DistanceText(), sum.DurationText())
//
// Travel time is distance divided by a speed in map units per hour; the
// generator works on a planar map, not a road network.
package route
