package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"gutlog-api/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/entries",
				Handler: DateRangeHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/entries/:date",
				Handler: SaveEntryHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/entries/:date",
				Handler: GetEntryHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/entries/:date",
				Handler: DeleteEntryHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/stats",
				Handler: StatisticsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/stats/triggers",
				Handler: TriggerFoodsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/stats/trends",
				Handler: TrendsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/export/csv",
				Handler: ExportCSVHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/export/json",
				Handler: ExportJSONHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/analysis/daily",
				Handler: DailyAnalysisHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/analysis/weekly",
				Handler: WeeklyAnalysisHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/v1"),
	)
}
