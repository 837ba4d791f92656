// Command urlrank prints a per-day ranking of URLs by hit count.
package main

import "os"

func main() {
	os.Exit(Execute())
}
