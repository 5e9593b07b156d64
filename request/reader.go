package request

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// MaxLineSize bounds the request line. Header lines are skipped whatever
// their length.
const MaxLineSize = 8 * 1024

var errLineTooLong = errors.New("line too long")

func getLineReader(reader io.Reader) *bufio.Reader {
	return bufio.NewReaderSize(reader, MaxLineSize)
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}

// readLine returns the next LF terminated line without its line ending. The
// last line of the stream may be unterminated; io.EOF is only returned when
// nothing was left to read.
func readLine(br *bufio.Reader) ([]byte, error) {
	line, err := br.ReadSlice('\n')
	switch {
	case err == nil:
		return trimEOL(line), nil
	case errors.Is(err, bufio.ErrBufferFull):
		return nil, errLineTooLong
	case errors.Is(err, io.EOF) && len(line) > 0:
		return trimEOL(line), nil
	default:
		return nil, err
	}
}

// discardHeaders reads lines until an empty one or the end of the stream.
// Lines longer than the buffer are consumed in pieces.
func discardHeaders(br *bufio.Reader) error {
	partial := false
	for {
		line, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			partial = true
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !partial && len(trimEOL(line)) == 0 {
			// end of headers
			return nil
		}
		if err != nil {
			return nil
		}
		partial = false
	}
}
