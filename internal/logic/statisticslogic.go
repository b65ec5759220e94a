package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"gutlog-api/internal/svc"
	"gutlog-api/internal/types"
)

type StatisticsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewStatisticsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StatisticsLogic {
	return &StatisticsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Statistics reports whole-journal averages. Over an empty journal every
// average is absent rather than zero.
func (l *StatisticsLogic) Statistics() (*types.StatisticsResp, error) {
	return &types.StatisticsResp{Summary: l.svcCtx.Store.Statistics()}, nil
}
