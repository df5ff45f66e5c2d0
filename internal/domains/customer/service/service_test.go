package service_test

import (
	"context"
	"errors"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/otel/mocks"
	customerMocks "frontdesk/internal/domains/customer/mocks"
	"frontdesk/internal/domains/customer/model"
	"frontdesk/internal/domains/customer/model/dto"
	"frontdesk/internal/domains/customer/service"
	sequenceMocks "frontdesk/internal/domains/sequence/mocks"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var _ service.Customer = (*customerMocks.MockCustomerService)(nil)

type deps struct {
	svc       service.Customer
	repo      *customerMocks.MockCustomer
	allocator *sequenceMocks.MockAllocator
	cache     *cacheMocks.MockCache
}

func newService(t *testing.T) deps {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Storage.Dir = t.TempDir()
	cfg.Storage.LockFile = "frontdesk.lock"
	cfg.Storage.LockTimeoutSeconds = 1

	d := deps{
		repo:      customerMocks.NewMockCustomer(ctrl),
		allocator: sequenceMocks.NewMockAllocator(ctrl),
		cache:     cacheMocks.NewMockCache(ctrl),
	}

	d.svc = service.New(d.repo, d.allocator, flatfile.New(cfg, mocks.NewOtel()), cfg, d.cache, mocks.NewOtel())

	return d
}

func TestCustomerService_Create(t *testing.T) {
	existing := []model.Customer{{ID: "C0001", Name: "Alice", Phone: "0811111111", Email: "alice@example.com"}}
	valid := dto.CreateCustomerRequest{Name: " Bob ", Phone: "08122223333", Email: "bob@example.com", RoomID: "101", DaysOfStay: 3}

	tests := []struct {
		name      string
		req       dto.CreateCustomerRequest
		setupMock func(d deps)
		wantErr   error
	}{
		{
			name: "successful creation",
			req:  valid,
			setupMock: func(d deps) {
				d.repo.EXPECT().Load(gomock.Any()).Return(existing, nil)
				d.allocator.EXPECT().NextID(gomock.Any(), constant.IDPrefixCustomer, []string{"C0001"}).Return("C0002", nil)
				d.repo.EXPECT().Save(gomock.Any(), append(existing, model.Customer{
					ID: "C0002", Name: "Bob", Phone: "08122223333", Email: "bob@example.com",
					RoomID: "101", DaysOfStay: "3", RegDate: timezone.Today(),
				})).Return(nil)
				d.cache.EXPECT().Clear(gomock.Any(), "customer:*").Return(nil)
			},
		},
		{
			name:      "whitespace name",
			req:       dto.CreateCustomerRequest{Name: "   ", Phone: "08122223333", Email: "bob@example.com"},
			setupMock: func(d deps) {},
			wantErr:   failure.ErrInvalidInput,
		},
		{
			name:      "phone too short",
			req:       dto.CreateCustomerRequest{Name: "Bob", Phone: "123", Email: "bob@example.com"},
			setupMock: func(d deps) {},
			wantErr:   failure.ErrInvalidInput,
		},
		{
			name:      "bad email",
			req:       dto.CreateCustomerRequest{Name: "Bob", Phone: "08122223333", Email: "bob"},
			setupMock: func(d deps) {},
			wantErr:   failure.ErrInvalidInput,
		},
		{
			name:      "negative days",
			req:       dto.CreateCustomerRequest{Name: "Bob", Phone: "08122223333", Email: "bob@example.com", DaysOfStay: -1},
			setupMock: func(d deps) {},
			wantErr:   failure.ErrInvalidInput,
		},
		{
			name: "unreadable table",
			req:  valid,
			setupMock: func(d deps) {
				d.repo.EXPECT().Load(gomock.Any()).Return(nil, failure.StorageUnavailable(errors.New("corrupt")))
			},
			wantErr: failure.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newService(t)
			tt.setupMock(d)

			res, err := d.svc.Create(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "C0002", res.ID)
			assert.Equal(t, 3, res.DaysOfStay)
		})
	}
}

func TestCustomerService_GetAll(t *testing.T) {
	d := newService(t)

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	d.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Customer{{ID: "C0001", Name: "Alice", DaysOfStay: "x"}}, nil)
	d.cache.EXPECT().Save(gomock.Any(), "customer:gets:1:10:[]", gomock.Any(), 60).Return(errors.New("redis down"))

	res, err := d.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, res.Customers, 1)
	assert.Zero(t, res.Customers[0].DaysOfStay)
}

func TestCustomerService_Get(t *testing.T) {
	d := newService(t)

	d.cache.EXPECT().Get(gomock.Any(), "customer:get:C0404", gomock.Any()).Return(errors.New("miss"))
	d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, nil)

	_, err := d.svc.Get(context.Background(), "C0404")
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestCustomerService_Search(t *testing.T) {
	d := newService(t)

	d.repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{gDto.Filter{Field: constant.Asterix, Value: "alice", Operator: gDto.FilterOperatorEqFold}},
	}).Return([]model.Customer{{ID: "C0001", Name: "Alice"}}, nil)

	res, err := d.svc.Search(context.Background(), " alice ")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "C0001", res[0].ID)

	_, err = d.svc.Search(context.Background(), "")
	assert.True(t, errors.Is(err, failure.ErrInvalidInput))
}

func TestCustomerService_Update(t *testing.T) {
	t.Run("only filled fields change", func(t *testing.T) {
		d := newService(t)

		d.repo.EXPECT().Update(gomock.Any(), map[string]string{"Email": "new@example.com", "DaysOfStay": "5"}, gomock.Any()).Return(1, nil)
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Customer{ID: "C0001", Phone: "0811111111", Email: "new@example.com", DaysOfStay: "5"}, nil)
		d.cache.EXPECT().Clear(gomock.Any(), "customer:*").Return(nil)

		res, err := d.svc.Update(context.Background(), dto.UpdateCustomerRequest{Email: "new@example.com", DaysOfStay: "5"}, "C0001")
		require.NoError(t, err)
		assert.Equal(t, "0811111111", res.Phone)
		assert.Equal(t, 5, res.DaysOfStay)
	})

	t.Run("unknown customer", func(t *testing.T) {
		d := newService(t)

		d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)

		_, err := d.svc.Update(context.Background(), dto.UpdateCustomerRequest{Phone: "0812345678"}, "C0404")
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("days must be a whole number", func(t *testing.T) {
		d := newService(t)

		_, err := d.svc.Update(context.Background(), dto.UpdateCustomerRequest{DaysOfStay: "two"}, "C0001")
		assert.True(t, errors.Is(err, failure.ErrInvalidInput))
	})
}

func TestCustomerService_Delete(t *testing.T) {
	d := newService(t)

	d.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(1, nil)
	d.cache.EXPECT().Clear(gomock.Any(), "customer:*").Return(nil)
	require.NoError(t, d.svc.Delete(context.Background(), "C0001"))

	d.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(0, nil)
	assert.Equal(t, 404, failure.GetCode(d.svc.Delete(context.Background(), "C0404")))
}
