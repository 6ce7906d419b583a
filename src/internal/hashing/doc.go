// Package hashing provides MD5 checksum calculation utilities.
//
// The proxies compute the checksum incrementally while data passes through
// an io.Reader or io.Writer. They are used to detect that a rendered
// configuration is identical to the file already on disk, so the file is
// not rewritten.
//
// # Example Usage
//
//	var buf bytes.Buffer
//	proxy := hashing.NewMD5WriterProxy(&buf)
//	render(proxy)
//
//	rendered, _ := proxy.GetChecksum()
//	current, err := hashing.FileChecksum("/etc/dnsmasq.d/01-pihole.conf")
//	if err == nil && current == rendered {
//	    // up to date
//	}
package hashing
