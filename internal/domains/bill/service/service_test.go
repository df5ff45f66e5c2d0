package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/otel/mocks"
	billMocks "frontdesk/internal/domains/bill/mocks"
	"frontdesk/internal/domains/bill/model/dto"
	billRepo "frontdesk/internal/domains/bill/repository"
	"frontdesk/internal/domains/bill/service"
	customerRepo "frontdesk/internal/domains/customer/repository"
	roomRepo "frontdesk/internal/domains/room/repository"
	sequenceMocks "frontdesk/internal/domains/sequence/mocks"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var _ service.Bill = (*billMocks.MockBillService)(nil)

type fixture struct {
	svc       service.Bill
	dir       string
	allocator *sequenceMocks.MockAllocator
}

// newFixture runs the service against real tables in a temp directory.
func newFixture(t *testing.T, tables map[string]string) fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()
	cfg.Storage.RoomFile = "rooms.csv"
	cfg.Storage.CustomerFile = "customers.csv"
	cfg.Storage.BillFile = "bills.csv"
	cfg.Storage.LockFile = "frontdesk.lock"
	cfg.Storage.LockTimeoutSeconds = 1

	for name, content := range tables {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.Storage.Dir, name), []byte(content), 0o600))
	}

	ot := mocks.NewOtel()
	store := flatfile.New(cfg, ot)
	allocator := sequenceMocks.NewMockAllocator(gomock.NewController(t))

	svc := service.New(
		billRepo.New(cfg, store, ot),
		customerRepo.New(cfg, store, ot),
		roomRepo.New(cfg, store, ot),
		allocator,
		store,
		cfg,
		cache.NewNoopCache(),
		ot,
	)

	return fixture{svc: svc, dir: cfg.Storage.Dir, allocator: allocator}
}

const (
	roomsTable = "RoomID,RoomType,Price,Status\n" +
		"101,Single,1000,Booked\n" +
		"201,Suite,4499.5,Booked\n"
	customersTable = "CustomerID,Name,Phone,Email,RoomID,DaysOfStay,RegDate\n" +
		"C0001,Alice,0811111111,alice@example.com,101,3,2026-01-02\n" +
		"C0002,Bob,0812222222,bob@example.com,201,two,2026-01-03\n" +
		"C0003,Carol,0813333333,carol@example.com,999,1,2026-01-04\n"
)

func TestBillService_Generate(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantTotal string
		wantPrice string
		wantDays  int
		wantCode  int
	}{
		{name: "by customer id", key: "C0001", wantTotal: "3000.00", wantPrice: "1000.00", wantDays: 3},
		{name: "by name ignoring case", key: "ALICE", wantTotal: "3000.00", wantPrice: "1000.00", wantDays: 3},
		{name: "by phone", key: "0811111111", wantTotal: "3000.00", wantPrice: "1000.00", wantDays: 3},
		{name: "days that are not a number bill as zero", key: "bob", wantTotal: "0.00", wantPrice: "4499.50", wantDays: 0},
		{name: "unknown customer", key: "nobody", wantCode: 404},
		{name: "room is gone", key: "Carol", wantCode: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, map[string]string{"rooms.csv": roomsTable, "customers.csv": customersTable})

			if tt.wantCode == 0 {
				f.allocator.EXPECT().NextID(gomock.Any(), constant.IDPrefixBill, []string{}).Return("BL0001", nil)
			}

			res, err := f.svc.Generate(context.Background(), dto.GenerateBillRequest{Key: tt.key})

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				_, statErr := os.Stat(filepath.Join(f.dir, "bills.csv"))
				assert.True(t, os.IsNotExist(statErr), "no bill table should be written")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "BL0001", res.ID)
			assert.Equal(t, tt.wantTotal, res.TotalAmount)
			assert.Equal(t, tt.wantPrice, res.PricePerDay)
			assert.Equal(t, tt.wantDays, res.DaysOfStay)
			assert.Equal(t, timezone.Today(), res.BillDate)

			content, err := os.ReadFile(filepath.Join(f.dir, "bills.csv"))
			require.NoError(t, err)
			assert.Contains(t, string(content), "BillID,CustomerID,Name,RoomID,DaysOfStay,PricePerDay,TotalAmount,BillDate\n")
			assert.Contains(t, string(content), "BL0001,"+res.CustomerID+",")
		})
	}
}

func TestBillService_GenerateRejectsBlankKey(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Generate(context.Background(), dto.GenerateBillRequest{Key: ""})
	assert.True(t, errors.Is(err, failure.ErrInvalidInput))
}

func TestBillService_GetAll(t *testing.T) {
	f := newFixture(t, map[string]string{
		"bills.csv": "BillID,CustomerID,Name,RoomID,DaysOfStay,PricePerDay,TotalAmount,BillDate\n" +
			"BL0001,C0001,Alice,101,3,1000.00,3000.00,2026-01-05\n",
	})

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	require.Len(t, res.Bills, 1)
	assert.Equal(t, "3000.00", res.Bills[0].TotalAmount)
}
