package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	testTools "github.com/ummah-orphan-care/donations/common/test_tools"
	donationDal "github.com/ummah-orphan-care/donations/donation/dal"
	"github.com/ummah-orphan-care/donations/donation/domain"
	"github.com/ummah-orphan-care/donations/donation/iface/mocks"
	"github.com/ummah-orphan-care/donations/donation/service"
	"github.com/ummah-orphan-care/donations/logger"
)

func newTestHandler(f *fields) *Donations {
	return &Donations{
		loggerProvider: logger.FromContext,
		service:        f.service,
		webhookService: f.webhookService,
	}
}

type fields struct {
	service        *mocks.DonationsService
	webhookService *mocks.DonationsWebhookService
}

func newFields() *fields {
	return &fields{
		service:        &mocks.DonationsService{},
		webhookService: &mocks.DonationsWebhookService{},
	}
}

func subscribeCtx(t *testing.T, uid string, body map[string]interface{}) *gin.Context {
	ctx := testTools.GenerateCtxWithJSONAndParams(t, body, nil)
	if uid != "" {
		ctx.Set("uid", uid)
	}

	return ctx
}

func TestDonations_SubscribeHandler(t *testing.T) {
	type args struct {
		ctx *gin.Context
	}

	tests := []struct {
		name    string
		args    args
		wantErr bool
		on      func(f *fields)
	}{
		{
			name: "missing uid",
			args: args{
				ctx: subscribeCtx(t, "", map[string]interface{}{"orphanId": "orphan1", "amount": 500}),
			},
			wantErr: true,
		},
		{
			name: "missing orphan id",
			args: args{
				ctx: subscribeCtx(t, "donor1", map[string]interface{}{"amount": 500}),
			},
			wantErr: true,
		},
		{
			name: "non positive amount",
			args: args{
				ctx: subscribeCtx(t, "donor1", map[string]interface{}{"orphanId": "orphan1", "amount": -5}),
			},
			wantErr: true,
		},
		{
			name: "service error",
			args: args{
				ctx: subscribeCtx(t, "donor1", map[string]interface{}{"orphanId": "orphan1", "amount": 500}),
			},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("Subscribe", mock.AnythingOfType("*gin.Context"), "donor1", mock.AnythingOfType("*domain.SubscribeRequest")).
					Return(nil, donationDal.ErrNotFound)
			},
		},
		{
			name: "success",
			args: args{
				ctx: subscribeCtx(t, "donor1", map[string]interface{}{"orphanId": "orphan1", "amount": 500}),
			},
			on: func(f *fields) {
				f.service.On("Subscribe", mock.AnythingOfType("*gin.Context"), "donor1", mock.AnythingOfType("*domain.SubscribeRequest")).
					Return(&domain.SubscribeResult{DonationID: "donation1"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields()
			if tt.on != nil {
				tt.on(f)
			}

			h := newTestHandler(f)

			if err := h.SubscribeHandler(tt.args.ctx); (err != nil) != tt.wantErr {
				t.Errorf("Donations.SubscribeHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDonations_CancelHandler(t *testing.T) {
	type args struct {
		ctx *gin.Context
	}

	tests := []struct {
		name    string
		args    args
		wantErr bool
		on      func(f *fields)
	}{
		{
			name: "missing donation id",
			args: args{
				ctx: subscribeCtx(t, "donor1", map[string]interface{}{}),
			},
			wantErr: true,
		},
		{
			name: "not the owner",
			args: args{
				ctx: subscribeCtx(t, "donor1", map[string]interface{}{"donationId": "donation1"}),
			},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("Cancel", mock.AnythingOfType("*gin.Context"), "donor1", "donation1").
					Return(service.ErrNotDonationOwner)
			},
		},
		{
			name: "success",
			args: args{
				ctx: subscribeCtx(t, "donor1", map[string]interface{}{"donationId": "donation1"}),
			},
			on: func(f *fields) {
				f.service.On("Cancel", mock.AnythingOfType("*gin.Context"), "donor1", "donation1").
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields()
			if tt.on != nil {
				tt.on(f)
			}

			h := newTestHandler(f)

			if err := h.CancelHandler(tt.args.ctx); (err != nil) != tt.wantErr {
				t.Errorf("Donations.CancelHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDonations_HistoryHandler(t *testing.T) {
	type args struct {
		ctx *gin.Context
	}

	tests := []struct {
		name    string
		args    args
		wantErr bool
		on      func(f *fields)
	}{
		{
			name: "missing uid",
			args: args{
				ctx: subscribeCtx(t, "", nil),
			},
			wantErr: true,
		},
		{
			name: "service error",
			args: args{
				ctx: subscribeCtx(t, "donor1", nil),
			},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("History", mock.AnythingOfType("*gin.Context"), "donor1").
					Return(nil, donationDal.ErrNotFound)
			},
		},
		{
			name: "success",
			args: args{
				ctx: subscribeCtx(t, "donor1", nil),
			},
			on: func(f *fields) {
				f.service.On("History", mock.AnythingOfType("*gin.Context"), "donor1").
					Return([]*domain.Donation{{ID: "donation1"}}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields()
			if tt.on != nil {
				tt.on(f)
			}

			h := newTestHandler(f)

			if err := h.HistoryHandler(tt.args.ctx); (err != nil) != tt.wantErr {
				t.Errorf("Donations.HistoryHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
