package convert

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

func (e srcEncoding) String() string {
	switch e {
	case encUnknown:
		return "unknown"
	case encUTF8:
		return "utf-8"
	case encUTF16BigEndian:
		return "utf-16be"
	case encUTF16LittleEndian:
		return "utf-16le"
	case encUTF32BigEndian:
		return "utf-32be"
	case encUTF32LittleEndian:
		return "utf-32le"
	}
	return fmt.Sprintf("srcEncoding(%d)", int(e))
}

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && bytes.Equal(buf[:3], []byte{0xEF, 0xBB, 0xBF})
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && bytes.Equal(buf[:4], []byte{0x00, 0x00, 0xFE, 0xFF})
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && bytes.Equal(buf[:4], []byte{0xFF, 0xFE, 0x00, 0x00})
}

// detectUTF looks for byte order mark. UTF-32LE has to be checked before
// UTF-16LE since they share first two bytes.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

// selectReader returns reader producing UTF-8 without byte order mark.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUnknown:
		return r
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder())
	}
	panic(fmt.Sprintf("unexpected source encoding %d", enc))
}

// sniffReader checks input for byte order mark without consuming it.
func sniffReader(r io.Reader) (io.Reader, srcEncoding) {
	br := bufio.NewReader(r)
	// short input is fine, whatever was peeked is checked
	buf, _ := br.Peek(4)
	enc := detectUTF(buf)
	return selectReader(br, enc), enc
}
