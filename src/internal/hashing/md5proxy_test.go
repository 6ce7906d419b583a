package hashing

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

type errorReader struct {
	err error
}

func (e *errorReader) Read([]byte) (int, error) {
	return 0, e.err
}

// shortWriter accepts at most limit bytes in total.
type shortWriter struct {
	buf   bytes.Buffer
	limit int
}

func (w *shortWriter) Write(p []byte) (int, error) {
	room := w.limit - w.buf.Len()
	if room < len(p) {
		w.buf.Write(p[:room])
		return room, io.ErrShortWrite
	}
	return w.buf.Write(p)
}

func TestChecksumReaderProxy(t *testing.T) {
	proxy := NewMD5ReaderProxy(strings.NewReader("hello world"))

	buf := make([]byte, 5)
	n, err := proxy.Read(buf)
	if err != nil || n != 5 || string(buf) != "hello" {
		t.Fatalf("Read() = %d, %v, %q", n, err, buf)
	}

	rest, err := io.ReadAll(proxy)
	if err != nil || string(rest) != " world" {
		t.Fatalf("ReadAll() = %q, %v", rest, err)
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		t.Fatalf("GetChecksum() error = %v", err)
	}
	if checksum != md5Hex("hello world") {
		t.Errorf("GetChecksum() = %s, want %s", checksum, md5Hex("hello world"))
	}
}

func TestChecksumReaderProxy_ReadError(t *testing.T) {
	expectedErr := errors.New("read failed")
	proxy := NewMD5ReaderProxy(&errorReader{err: expectedErr})

	if _, err := proxy.Read(make([]byte, 8)); err != expectedErr {
		t.Errorf("Read() error = %v, want %v", err, expectedErr)
	}

	checksum, err := proxy.GetChecksum()
	if err != nil || checksum != md5Hex("") {
		t.Errorf("GetChecksum() = %s, %v, want checksum of empty input", checksum, err)
	}
}

func TestChecksumWriterProxy(t *testing.T) {
	var buf bytes.Buffer
	proxy := NewMD5WriterProxy(&buf)

	for _, part := range []string{"server=8.8.8.8\n", "interface=eth0\n"} {
		if _, err := io.WriteString(proxy, part); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	want := "server=8.8.8.8\ninterface=eth0\n"
	if buf.String() != want {
		t.Errorf("underlying writer got %q", buf.String())
	}
	if checksum, _ := proxy.GetChecksum(); checksum != md5Hex(want) {
		t.Errorf("GetChecksum() = %s, want %s", checksum, md5Hex(want))
	}
}

func TestChecksumWriterProxy_ShortWrite(t *testing.T) {
	w := &shortWriter{limit: 4}
	proxy := NewMD5WriterProxy(w)

	n, err := proxy.Write([]byte("abcdef"))
	if n != 4 || err != io.ErrShortWrite {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if checksum, _ := proxy.GetChecksum(); checksum != md5Hex("abcd") {
		t.Errorf("checksum must cover only the accepted bytes")
	}
}

func TestFileChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "01-pihole.conf")
	if err := os.WriteFile(path, []byte("cache-size=10000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	checksum, err := FileChecksum(path)
	if err != nil {
		t.Fatalf("FileChecksum() error = %v", err)
	}
	if checksum != md5Hex("cache-size=10000\n") {
		t.Errorf("FileChecksum() = %s", checksum)
	}

	if _, err := FileChecksum(filepath.Join(t.TempDir(), "missing")); !os.IsNotExist(err) {
		t.Errorf("FileChecksum() error = %v, want not-exist", err)
	}
}
