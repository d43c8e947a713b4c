package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ngrash/go-zoned/civil"
	"github.com/ngrash/go-zoned/tzdb"
	"github.com/ngrash/go-zoned/zoned"
)

var (
	fromFlag = flag.String("from", "UTC", "zone the input wall-clock time is in")
	toFlag   = flag.String("to", "UTC", "zone to convert to")
	dirFlag  = flag.String("dir", "", "zoneinfo directory (default: platform directories)")
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
		return fmt.Errorf(`Usage: zconvert [flags] "YYYY-MM-DD HH:MM:SS"`)
	}

	var db *tzdb.DB
	if *dirFlag != "" {
		db = tzdb.Open(*dirFlag)
	} else {
		db = tzdb.Open()
	}

	from, err := db.Find(*fromFlag)
	if err != nil {
		return err
	}
	to, err := db.Find(*toFlag)
	if err != nil {
		return err
	}

	ct, err := civil.Parse(args[0])
	if err != nil {
		return err
	}

	t, err := zoned.FromLocal(ct, from, nil)
	if err != nil {
		return err
	}
	converted := zoned.FromUTC(t.UTC(), to)

	fmt.Printf("%s (%s)\n", t, t.Abbrev())
	fmt.Printf("%s (%s)\n", converted, converted.Abbrev())
	return nil
}
