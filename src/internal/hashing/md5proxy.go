package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
	"os"
)

type ChecksumProvider interface {
	GetChecksum() (string, error)
}

// ChecksumReaderProxy calculates the MD5 checksum of data as it's read.
type ChecksumReaderProxy struct {
	reader      io.Reader
	checksum    hash.Hash
	checksumErr error
}

// NewMD5ReaderProxy creates a new instance of ChecksumReaderProxy.
func NewMD5ReaderProxy(reader io.Reader) *ChecksumReaderProxy {
	return &ChecksumReaderProxy{
		reader:   reader,
		checksum: md5.New(),
	}
}

// Read reads data from the underlying reader and updates the checksum.
func (p *ChecksumReaderProxy) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		if _, checksumErr := p.checksum.Write(buf[:n]); checksumErr != nil {
			p.checksumErr = checksumErr
			return n, checksumErr
		}
	}
	return n, err
}

// GetChecksum returns the calculated MD5 checksum as a hex string.
func (p *ChecksumReaderProxy) GetChecksum() (string, error) {
	if p.checksumErr != nil {
		return "", p.checksumErr
	}
	return hex.EncodeToString(p.checksum.Sum(nil)), nil
}

// ChecksumWriterProxy calculates the MD5 checksum of data as it's written.
// Only bytes accepted by the underlying writer are hashed.
type ChecksumWriterProxy struct {
	writer      io.Writer
	checksum    hash.Hash
	checksumErr error
}

// NewMD5WriterProxy creates a new instance of ChecksumWriterProxy.
func NewMD5WriterProxy(writer io.Writer) *ChecksumWriterProxy {
	return &ChecksumWriterProxy{
		writer:   writer,
		checksum: md5.New(),
	}
}

// Write writes data to the underlying writer and updates the checksum.
func (p *ChecksumWriterProxy) Write(buf []byte) (int, error) {
	n, err := p.writer.Write(buf)
	if n > 0 {
		if _, checksumErr := p.checksum.Write(buf[:n]); checksumErr != nil {
			p.checksumErr = checksumErr
			return n, checksumErr
		}
	}
	return n, err
}

// GetChecksum returns the calculated MD5 checksum as a hex string.
func (p *ChecksumWriterProxy) GetChecksum() (string, error) {
	if p.checksumErr != nil {
		return "", p.checksumErr
	}
	return hex.EncodeToString(p.checksum.Sum(nil)), nil
}

// FileChecksum returns the MD5 checksum of the file at path.
func FileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	proxy := NewMD5ReaderProxy(f)
	if _, err := io.Copy(io.Discard, proxy); err != nil {
		return "", err
	}
	return proxy.GetChecksum()
}
