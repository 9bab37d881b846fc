// Package resume reads a student's resume attachment and embeds it as a
// data URL on the student record.
package resume

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/yigit/campushire/internal/pkg/apperrors"
)

// MaxSize caps how large an uploaded resume may be.
const MaxSize = 5 << 20 // 5 MiB

// pdfMagic is the header every PDF file starts with.
var pdfMagic = []byte("%PDF-")

// Result carries the outcome of an asynchronous resume read.
type Result struct {
	DataURL string
	Err     error
}

// Read starts reading the attachment in the background and delivers exactly
// one Result on the returned channel. Callers must receive the result before
// committing the profile update that carries the resume; only one read is in
// flight per profile submission.
func Read(r io.Reader) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		dataURL, err := Encode(r)
		out <- Result{DataURL: dataURL, Err: err}
	}()
	return out
}

// Encode reads the full attachment, verifies it is a PDF and returns it as
// a base64 data URL.
func Encode(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	if len(data) > MaxSize {
		return "", apperrors.NewBadRequestError("resume file is too large")
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return "", apperrors.ErrInvalidResume
	}
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(data), nil
}
