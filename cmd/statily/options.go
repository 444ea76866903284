package main

//Options represents command line options
type Options struct {
	ConfigURL string `short:"c" long:"config" description:"configuration URL"`
	Version   bool   `short:"v" long:"version" description:"print version"`
	Args      struct {
		Identifiers []string `positional-arg-name:"identifier" description:"source identifiers to resolve"`
	} `positional-args:"yes"`
}
