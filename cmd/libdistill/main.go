// Package main builds libdistill, a C shared library that exposes the
// extraction pipeline to foreign hosts:
//
//	go build -buildmode=c-shared -o libdistill.so ./cmd/libdistill
//
// Every call to parse returns a JSON buffer owned by the library. The
// buffer stays valid until the host passes the id embedded in the JSON
// back to freeMemory. Failure never crosses the boundary: malformed
// input, extraction errors, and internal panics all degrade to an empty
// tracked result.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"log/slog"
	"os"
	"unsafe"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/arena"
	distillparse "github.com/fwojciec/distill/parse"
	"github.com/fwojciec/distill/readability"
	distillslog "github.com/fwojciec/distill/slog"
	"github.com/google/uuid"
)

// buffers tracks every JSON buffer handed to the host, keyed by the
// result id embedded in the JSON. The arena is the only state shared
// between calls.
var buffers = arena.New[*C.char]()

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var parser = &distillparse.Parser{
	Extractor: distillslog.NewLoggingExtractor(readability.NewExtractor(), logger),
}

//export parse
func parse(html, baseURL *C.char) (out *C.char) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("extraction panicked", "panic", r)
			out = track(emptyResult())
		}
	}()

	if html == nil {
		return track(emptyResult())
	}

	var base string
	if baseURL != nil {
		base = C.GoString(baseURL)
	}

	result, err := parser.Parse(C.GoString(html), base)
	if err != nil {
		logger.Error("extraction failed", "err", err)
		result = emptyResult()
	}

	return track(result)
}

//export freeMemory
func freeMemory(id *C.char) {
	if id == nil {
		return
	}

	buf, ok := buffers.Remove(C.GoString(id))
	if !ok {
		logger.Warn("release of unknown result id", "id", C.GoString(id))
		return
	}

	C.free(unsafe.Pointer(buf))
}

// track serializes the result, registers the buffer under the result id,
// and returns the pointer whose ownership passes to the host.
func track(result *distill.Result) *C.char {
	data, err := result.JSON()
	if err != nil {
		// Keep the contract even when encoding fails: the host still
		// receives an id it can release.
		data = []byte(`{"id":"` + result.ID + `"}`)
	}

	buf := C.CString(string(data))
	buffers.Put(result.ID, buf)
	return buf
}

func emptyResult() *distill.Result {
	return distill.NewResult(uuid.NewString(), &distill.Article{})
}

// main is required by buildmode=c-shared and never runs.
func main() {}
