package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"gutlog-api/internal/logic"
	"gutlog-api/internal/svc"
)

// Export handlers stream raw file downloads instead of the JSON envelope the
// rest of the API uses.

func ExportCSVHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewExportLogic(r.Context(), svcCtx)
		csvData, err := l.CSV()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="gutlog.csv"`)
		_, _ = w.Write([]byte(csvData))
	}
}

func ExportJSONHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewExportLogic(r.Context(), svcCtx)
		jsonData, err := l.JSON()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="gutlog.json"`)
		_, _ = w.Write(jsonData)
	}
}
