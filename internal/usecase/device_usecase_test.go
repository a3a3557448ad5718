package usecase

import (
	"context"
	"errors"
	"testing"

	"repairdesk/internal/domain/entities"
	mock_interfaces "repairdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDeviceUseCase_RegisterDevice(t *testing.T) {
	t.Run("missing customer", func(t *testing.T) {
		uc := NewDeviceUseCase(nil, nil)
		_, err := uc.RegisterDevice(context.Background(), RegisterDeviceInput{CustomerName: "  "})
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("negative warranty months", func(t *testing.T) {
		uc := NewDeviceUseCase(nil, nil)
		_, err := uc.RegisterDevice(context.Background(), RegisterDeviceInput{CustomerName: "Lan", WarrantyMonths: -1})
		if !errors.Is(err, ErrInvalidWarrantyMonths) {
			t.Fatalf("expected ErrInvalidWarrantyMonths, got %v", err)
		}
	})

	t.Run("success starts at RECEIVED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Device{})).DoAndReturn(
			func(_ context.Context, d entities.Device) (entities.Device, error) {
				if d.ID == "" {
					t.Fatalf("id must be assigned")
				}
				if d.Status != entities.DeviceStatusReceived {
					t.Fatalf("expected RECEIVED, got %s", d.Status)
				}
				if d.CustomerName != "Lan" || d.Brand != "Apple" {
					t.Fatalf("unexpected device: %+v", d)
				}
				if d.ReceivedDate.IsZero() || d.CreatedAt.IsZero() {
					t.Fatalf("dates must be set")
				}
				return d, nil
			},
		)

		d, err := uc.RegisterDevice(context.Background(), RegisterDeviceInput{CustomerName: " Lan ", Brand: "Apple", Model: "iPhone 12"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Model != "iPhone 12" {
			t.Fatalf("unexpected result: %+v", d)
		}
	})
}

func TestDeviceUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDeviceUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidDeviceID) {
			t.Fatalf("expected ErrInvalidDeviceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{}, nil)

		_, err := uc.GetByID(context.Background(), "dev-1")
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})

	t.Run("success trims id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewDeviceUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1"}, nil)

		d, err := uc.GetByID(context.Background(), " dev-1 ")
		if err != nil || d.ID != "dev-1" {
			t.Fatalf("unexpected result err=%v d=%+v", err, d)
		}
	})
}

func TestDeviceUseCase_ChangeStatus(t *testing.T) {
	technician := entities.Actor{ID: "u-1", Name: "Minh", Role: entities.RoleTechnician}
	receptionist := entities.Actor{ID: "u-2", Name: "Thu", Role: entities.RoleReceptionist}

	t.Run("technician transition appends one audit entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		auditLog := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewDeviceUseCase(repo, auditLog)

		repo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1", Status: entities.DeviceStatusReceived}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "dev-1", entities.DeviceStatusRepairing).Return(entities.Device{ID: "dev-1", Status: entities.DeviceStatusRepairing}, nil)
		auditLog.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.AuditLog{})).DoAndReturn(
			func(_ context.Context, entry entities.AuditLog) (entities.AuditLog, error) {
				if entry.Detail != "RECEIVED → REPAIRING" {
					t.Fatalf("unexpected detail %q", entry.Detail)
				}
				if entry.Action != entities.AuditActionStatusChanged {
					t.Fatalf("unexpected action %s", entry.Action)
				}
				if entry.ActorID != "u-1" || entry.ActorName != "Minh" {
					t.Fatalf("entry not attributed to actor: %+v", entry)
				}
				if entry.DeviceID != "dev-1" || entry.ID == "" || entry.CreatedAt.IsZero() {
					t.Fatalf("incomplete entry: %+v", entry)
				}
				return entry, nil
			},
		)

		d, err := uc.ChangeStatus(context.Background(), technician, "dev-1", "REPAIRING")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Status != entities.DeviceStatusRepairing {
			t.Fatalf("expected REPAIRING, got %s", d.Status)
		}
	})

	t.Run("receptionist is rejected before any read or write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		auditLog := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewDeviceUseCase(repo, auditLog)

		_, err := uc.ChangeStatus(context.Background(), receptionist, "dev-1", "REPAIRING")
		if !errors.Is(err, ErrStatusChangeForbidden) {
			t.Fatalf("expected ErrStatusChangeForbidden, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewDeviceUseCase(nil, nil)
		_, err := uc.ChangeStatus(context.Background(), technician, "dev-1", "FIXED")
		if !errors.Is(err, ErrInvalidDeviceStatus) {
			t.Fatalf("expected ErrInvalidDeviceStatus, got %v", err)
		}
	})

	t.Run("empty device id", func(t *testing.T) {
		uc := NewDeviceUseCase(nil, nil)
		_, err := uc.ChangeStatus(context.Background(), technician, " ", "REPAIRING")
		if !errors.Is(err, ErrInvalidDeviceID) {
			t.Fatalf("expected ErrInvalidDeviceID, got %v", err)
		}
	})

	t.Run("device not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		auditLog := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewDeviceUseCase(repo, auditLog)

		repo.EXPECT().GetByID(gomock.Any(), "dev-404").Return(entities.Device{}, nil)

		_, err := uc.ChangeStatus(context.Background(), technician, "dev-404", "REPAIRING")
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})

	t.Run("backwards transition is permitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		auditLog := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewDeviceUseCase(repo, auditLog)

		repo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1", Status: entities.DeviceStatusCompleted}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "dev-1", entities.DeviceStatusInspecting).Return(entities.Device{ID: "dev-1", Status: entities.DeviceStatusInspecting}, nil)
		auditLog.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry entities.AuditLog) (entities.AuditLog, error) {
				if entry.Detail != "COMPLETED → INSPECTING" {
					t.Fatalf("unexpected detail %q", entry.Detail)
				}
				return entry, nil
			},
		)

		if _, err := uc.ChangeStatus(context.Background(), technician, "dev-1", "INSPECTING"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("audit append failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		auditLog := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewDeviceUseCase(repo, auditLog)

		repo.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1", Status: entities.DeviceStatusReceived}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "dev-1", entities.DeviceStatusCompleted).Return(entities.Device{ID: "dev-1", Status: entities.DeviceStatusCompleted}, nil)
		auditLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.AuditLog{}, errors.New("db"))

		_, err := uc.ChangeStatus(context.Background(), technician, "dev-1", "COMPLETED")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDeviceUseCase_ListAuditLogs(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDeviceUseCase(nil, nil)
		_, err := uc.ListAuditLogs(context.Background(), " ")
		if !errors.Is(err, ErrInvalidDeviceID) {
			t.Fatalf("expected ErrInvalidDeviceID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auditLog := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewDeviceUseCase(nil, auditLog)

		expected := []entities.AuditLog{{ID: "a-1", Detail: "RECEIVED → INSPECTING"}}
		auditLog.EXPECT().ListByDeviceID(gomock.Any(), "dev-1").Return(expected, nil)

		logs, err := uc.ListAuditLogs(context.Background(), " dev-1 ")
		if err != nil || len(logs) != 1 || logs[0].ID != "a-1" {
			t.Fatalf("unexpected result err=%v logs=%+v", err, logs)
		}
	})
}
