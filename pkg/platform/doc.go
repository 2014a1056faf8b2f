// Package platform resolves the ordered list of platforms the host can run
// software for.
//
// A chain starts at the host's base platform (for example
// "ubuntu-22.04-amd64-64"), continues through the platforms listed as
// compatible in the SSM compatibility records, and always ends with the
// universal layers "all" and "multi". Domains are loaded in the reverse
// order so the most specific layer ends up in front.
package platform
