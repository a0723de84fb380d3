package dto

import (
	"frontdesk/internal/domains/audit/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

type EntryResponse struct {
	At        string
	Actor     string
	Action    string
	Reference string
	Detail    string
}

func (r *EntryResponse) FromModel(model model.Entry) {
	r.At = timezone.Format(model.At, constant.DateFormat)
	r.Actor = model.Actor
	r.Action = model.Action
	r.Reference = model.Reference
	r.Detail = model.Detail
}

type GetEntriesResponse struct {
	Entries   []EntryResponse
	TotalData int
}

func (r *GetEntriesResponse) FromModels(models []model.Entry) {
	r.TotalData = len(models)

	r.Entries = make([]EntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}
