package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/solarsim/orrery"
)

const dateFormat = "2006-01-02 15:04:05"

var (
	dateStr  string
	catalog  string
	bodyName string
	center   string
	segments int
)

func init() {
	flag.StringVar(&dateStr, "date", "", "UTC date to compute positions for (YYYY-MM-DD HH:MM:SS), defaults to now")
	flag.StringVar(&catalog, "catalog", "", "TOML catalog file, defaults to the built-in solar system")
	flag.StringVar(&bodyName, "body", "", "print the orbital path and perihelion of this body only")
	flag.StringVar(&center, "center", "", "re-center positions on this body instead of the Sun")
	flag.IntVar(&segments, "segments", 128, "segment count for orbital path sampling")
}

func main() {
	flag.Parse()
	dt := time.Now().UTC()
	if dateStr != "" {
		var err error
		dt, err = time.Parse(dateFormat, dateStr)
		if err != nil {
			log.Fatalf("could not parse date `%s`: %s", dateStr, err)
		}
	}

	bodies := orrery.Catalog
	if catalog != "" {
		var err error
		bodies, err = orrery.LoadCatalog(catalog)
		if err != nil {
			log.Fatalf("%s", err)
		}
	}

	logger := kitlog.With(kitlog.NewLogfmtLogger(os.Stderr), "ts", kitlog.DefaultTimestampUTC)
	trk := orrery.NewTracker(logger)
	jd := orrery.TimeToJulianDay(dt)
	fmt.Printf("epoch %s (JD %.5f)\n", dt.Format(dateFormat), jd)

	if bodyName != "" {
		body, found := findBody(bodies, bodyName)
		if !found {
			log.Fatalf("body `%s` not in catalog", bodyName)
		}
		path := trk.Path(body, segments)
		peri := trk.Perihelion(body)
		fmt.Printf("%s: %d path points (closed=%v)\n", body.Name, len(path), closed(path))
		fmt.Printf("perihelion: [%+.6f %+.6f %+.6f] |r|=%.6f\n", peri[0], peri[1], peri[2], orrery.Norm(peri))
		return
	}

	var origin orrery.Body
	if center != "" {
		var found bool
		origin, found = findBody(bodies, center)
		if !found {
			log.Fatalf("center body `%s` not in catalog", center)
		}
	}

	fmt.Printf("%-10s %14s %14s %14s %12s\n", "body", "x (AU)", "y (AU)", "z (AU)", "|r| (AU)")
	for _, body := range bodies {
		var R []float64
		if center != "" {
			R = trk.RelativePosition(origin, body, jd)
		} else {
			R = trk.Position(body, jd)
		}
		fmt.Printf("%-10s %+14.6f %+14.6f %+14.6f %12.6f\n", body.Name, R[0], R[1], R[2], orrery.Norm(R))
	}
}

func findBody(bodies []orrery.Body, name string) (orrery.Body, bool) {
	for _, b := range bodies {
		if b.Name == name {
			return b, true
		}
	}
	return orrery.Body{}, false
}

func closed(path [][]float64) bool {
	if len(path) < 2 {
		return false
	}
	first, last := path[0], path[len(path)-1]
	return first[0] == last[0] && first[1] == last[1] && first[2] == last[2]
}
