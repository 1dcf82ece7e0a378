package dto

import (
	"sharedhouse/shared/constant"
	"sharedhouse/shared/model"
)

type Metadata struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = model.CreatedAt.UTC().Format(constant.DateFormat)
	m.UpdatedAt = model.UpdatedAt.UTC().Format(constant.DateFormat)
}
