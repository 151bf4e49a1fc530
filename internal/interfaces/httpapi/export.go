package httpapi

import (
	"context"
	"encoding/csv"
	"net/http"

	"github.com/valyala/bytebufferpool"
)

// writeCSV renders the export into a pooled buffer first so an encoding
// failure can still produce a JSON error response.
func writeCSV(ctx context.Context, w http.ResponseWriter, filename string, fill func(*csv.Writer) error) {
	ctx, span := startSpan(ctx, "httpapi.writeCSV")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	cw := csv.NewWriter(buf)
	if err := fill(cw); err != nil {
		writeInternalError(ctx, w)
		return
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.B)
}
