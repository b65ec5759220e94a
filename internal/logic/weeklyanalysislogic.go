package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"gutlog-api/internal/svc"
	"gutlog-api/internal/types"
)

type WeeklyAnalysisLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewWeeklyAnalysisLogic(ctx context.Context, svcCtx *svc.ServiceContext) *WeeklyAnalysisLogic {
	return &WeeklyAnalysisLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// WeeklyAnalysis sends the most recent days of entries (default one week) to
// the wellness model and returns its structured trend report.
func (l *WeeklyAnalysisLogic) WeeklyAnalysis(req *types.WeeklyAnalysisReq) (*types.WeeklyAnalysisResp, error) {
	if l.svcCtx.Analyzer == nil {
		return nil, ErrAnalysisUnconfigured
	}

	days := req.Days
	if days <= 0 {
		days = l.svcCtx.Config.RangeDays
	}

	doc := l.svcCtx.Store.DateRange(days)
	if len(doc) == 0 {
		return nil, fmt.Errorf("no entries recorded in the last %d days", days)
	}

	report, err := l.svcCtx.Analyzer.AnalyzeWeekly(l.ctx, doc)
	if err != nil {
		l.Errorf("weekly analysis failed: %v", err)
		return nil, err
	}
	return &types.WeeklyAnalysisResp{Days: days, Report: *report}, nil
}
