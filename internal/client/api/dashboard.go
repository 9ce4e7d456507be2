package api

import (
	"context"
	"net/http"

	"github.com/dkravets/libris/internal/client/models"
)

type Dashboard struct {
	gw Sender
}

func NewDashboard(gw Sender) *Dashboard {
	return &Dashboard{gw: gw}
}

func (d *Dashboard) Get(ctx context.Context) (*models.Dashboard, error) {
	res, err := d.gw.Send(ctx, http.MethodGet, "/dashboard", nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[models.Dashboard](res)
}
