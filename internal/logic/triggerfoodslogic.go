package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"gutlog-api/internal/stats"
	"gutlog-api/internal/svc"
	"gutlog-api/internal/types"
)

type TriggerFoodsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTriggerFoodsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TriggerFoodsLogic {
	return &TriggerFoodsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// TriggerFoods surfaces the meals recorded on high-severity days inside the
// requested window.
func (l *TriggerFoodsLogic) TriggerFoods(req *types.TriggerFoodsReq) (*types.TriggerFoodsResp, error) {
	days := req.Days
	if days <= 0 {
		days = l.svcCtx.Config.RangeDays
	}
	threshold := req.Threshold
	if threshold <= 0 {
		threshold = l.svcCtx.Config.TriggerThreshold
	}
	if threshold <= 0 {
		threshold = stats.DefaultTriggerThreshold
	}

	doc := l.svcCtx.Store.DateRange(days)
	return &types.TriggerFoodsResp{
		Threshold: threshold,
		Triggers:  stats.TriggerFoods(doc, threshold),
	}, nil
}
