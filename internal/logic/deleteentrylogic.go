package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"gutlog-api/internal/model"
	"gutlog-api/internal/svc"
	"gutlog-api/internal/types"
)

type DeleteEntryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteEntryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteEntryLogic {
	return &DeleteEntryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// DeleteEntry removes the entry for a date. Deleting a date with no entry is
// a successful no-op.
func (l *DeleteEntryLogic) DeleteEntry(req *types.DeleteEntryReq) (*types.DeleteEntryResp, error) {
	if err := model.ValidateDate(req.Date); err != nil {
		return nil, err
	}
	_, existed := l.svcCtx.Store.Entry(req.Date)
	if err := l.svcCtx.Store.Delete(req.Date); err != nil {
		return nil, err
	}
	return &types.DeleteEntryResp{Date: req.Date, Deleted: existed}, nil
}
