package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"gutlog-api/internal/stats"
	"gutlog-api/internal/svc"
	"gutlog-api/internal/types"
)

type TrendsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTrendsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TrendsLogic {
	return &TrendsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Trends returns the chart-ready rolling and lagged series over the whole
// journal, plus severity correlations.
func (l *TrendsLogic) Trends(req *types.TrendsReq) (*types.TrendsResp, error) {
	window := req.Window
	if window <= 0 {
		window = stats.TrendWindow
	}

	doc := l.svcCtx.Store.Load()
	return &types.TrendsResp{
		Window:       window,
		Points:       stats.Trends(doc, window),
		Correlations: stats.Correlations(doc),
	}, nil
}
