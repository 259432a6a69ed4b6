package main

import "strings"

// multiFlag collects a repeatable string flag; each occurrence may also
// carry comma-separated values.
type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}
