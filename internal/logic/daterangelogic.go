package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"gutlog-api/internal/svc"
	"gutlog-api/internal/types"
)

type DateRangeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDateRangeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DateRangeLogic {
	return &DateRangeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// DateRange returns the entries recorded in the most recent req.Days calendar
// dates ending today. Days without entries are simply missing from the map.
func (l *DateRangeLogic) DateRange(req *types.DateRangeReq) (*types.DateRangeResp, error) {
	days := req.Days
	if days <= 0 {
		days = l.svcCtx.Config.RangeDays
	}
	return &types.DateRangeResp{
		Days:    days,
		Entries: l.svcCtx.Store.DateRange(days),
	}, nil
}
