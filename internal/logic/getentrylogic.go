package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"gutlog-api/internal/model"
	"gutlog-api/internal/svc"
	"gutlog-api/internal/types"
)

type GetEntryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetEntryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetEntryLogic {
	return &GetEntryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetEntry fetches one date's entry. An absent date is a normal response with
// found=false, not an error.
func (l *GetEntryLogic) GetEntry(req *types.GetEntryReq) (*types.GetEntryResp, error) {
	if err := model.ValidateDate(req.Date); err != nil {
		return nil, err
	}
	entry, ok := l.svcCtx.Store.Entry(req.Date)
	resp := &types.GetEntryResp{Date: req.Date, Found: ok}
	if ok {
		resp.Entry = &entry
	}
	return resp, nil
}
