package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ngrash/go-zoned/civil"
	"github.com/ngrash/go-zoned/tzdb"
	"github.com/ngrash/go-zoned/zoned"
)

var (
	dirFlag   = flag.String("dir", "", "zoneinfo directory (default: platform directories)")
	atFlag    = flag.String("at", "", "instant to inspect, RFC3339 (default: now)")
	localFlag = flag.String("local", "", `wall-clock time to probe for gaps and folds, "YYYY-MM-DD HH:MM:SS"`)
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		return fmt.Errorf("Usage: zinspect [flags] <zone name>")
	}

	var db *tzdb.DB
	if *dirFlag != "" {
		db = tzdb.Open(*dirFlag)
	} else {
		db = tzdb.Open()
	}

	z, err := db.Find(args[0])
	if err != nil {
		return err
	}

	at := time.Now().UTC()
	if *atFlag != "" {
		at, err = time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			return fmt.Errorf("parsing -at: %w", err)
		}
	}

	t := zoned.FromUTC(at.UTC(), z)
	fmt.Println("Zone:", z.Name())
	fmt.Println("At:", t)
	p := t.Period()
	fmt.Printf("Period: offset=%s abbrev=%s dst=%v\n", tzdb.FormatOffset(p.OffsetSeconds), p.Abbrev, p.DST)
	if next, np, ok := z.NextTransition(t.Unix()); ok {
		fmt.Printf("Next transition: %s -> offset=%s abbrev=%s dst=%v\n",
			time.Unix(next, 0).UTC().Format(time.RFC3339), tzdb.FormatOffset(np.OffsetSeconds), np.Abbrev, np.DST)
	} else {
		fmt.Println("Next transition: none recorded")
	}

	if *localFlag != "" {
		ct, err := civil.Parse(*localFlag)
		if err != nil {
			return err
		}
		probeLocal(z, ct)
	}
	return nil
}

func probeLocal(z *tzdb.Zone, ct civil.Time) {
	candidates := z.PeriodsForLocal(ct)
	switch len(candidates) {
	case 0:
		fmt.Printf("Local %s: gap (clocks skipped this time)\n", ct)
	case 1:
		fmt.Printf("Local %s: offset=%s abbrev=%s dst=%v\n",
			ct, tzdb.FormatOffset(candidates[0].OffsetSeconds), candidates[0].Abbrev, candidates[0].DST)
	default:
		fmt.Printf("Local %s: fold (occurs %d times)\n", ct, len(candidates))
		for _, p := range candidates {
			fmt.Printf("  offset=%s abbrev=%s dst=%v\n", tzdb.FormatOffset(p.OffsetSeconds), p.Abbrev, p.DST)
		}
	}
}
