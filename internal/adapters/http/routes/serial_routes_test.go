package routes

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"palmtec-registry/internal/core/domain"
)

func intPtr(v int) *int { return &v }

func TestListSerialNumbers(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.session(t)

	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	env.serials.EXPECT().List(gomock.Any()).Return([]domain.SerialNumber{
		{SerialNumber: "202506AMP000003B", IsApproved: intPtr(1), IsAllocated: intPtr(0), CreateDate: &late},
		{SerialNumber: "202501AMP000002B", IsApproved: intPtr(0), IsAllocated: intPtr(0), CreateDate: &early},
		{SerialNumber: "202412AMP000001B"},
	}, nil)

	resp, body := env.do(t, http.MethodGet, "/get_serial_numbers/", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Serial numbers retrived successfully", body["message"])

	data := body["data"].([]interface{})
	require.Len(t, data, 3)

	order := make([]string, 0, len(data))
	for _, row := range data {
		order = append(order, row.(map[string]interface{})["serialnumber"].(string))
	}
	assert.Equal(t, []string{"202412AMP000001B", "202501AMP000002B", "202506AMP000003B"}, order)

	first := data[0].(map[string]interface{})
	assert.Nil(t, first["isapproved"])
	assert.NotContains(t, first, "createDate")
}

func TestAddSerialNumber(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		env := newTestEnv(t)
		env.procs.EXPECT().SaveSerialNumber(gomock.Any(), testSerial, domain.CategoryUPIPlus).
			Return(domain.Outcome{Status: domain.StatusSuccess, Message: "Serial number saved"}, nil)

		resp, body := env.do(t, http.MethodPost, "/add_serial_number/", `{"serialnumber":"  `+testSerial+` "}`, env.session(t))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, "Serial number saved", body["message"])
	})

	t.Run("duplicate", func(t *testing.T) {
		env := newTestEnv(t)
		env.procs.EXPECT().SaveSerialNumber(gomock.Any(), testSerial, domain.CategoryUPIPlus).
			Return(domain.Outcome{Status: domain.StatusDuplicate, Message: "Serial number already exists"}, nil)

		resp, body := env.do(t, http.MethodPost, "/add_serial_number/", `{"serialnumber":"`+testSerial+`"}`, env.session(t))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "duplicate", body["status"])
	})

	t.Run("unexpected status token", func(t *testing.T) {
		env := newTestEnv(t)
		env.procs.EXPECT().SaveSerialNumber(gomock.Any(), testSerial, domain.CategoryUPIPlus).
			Return(domain.Outcome{Status: domain.StatusError, Message: "Something went wrong"}, nil)

		resp, body := env.do(t, http.MethodPost, "/add_serial_number/", `{"serialnumber":"`+testSerial+`"}`, env.session(t))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "error", body["status"])
	})

	t.Run("empty body", func(t *testing.T) {
		env := newTestEnv(t)
		resp, body := env.do(t, http.MethodPost, "/add_serial_number/", "", env.session(t))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Missing input data", body["message"])
	})

	t.Run("invalid format never reaches the store", func(t *testing.T) {
		env := newTestEnv(t)
		resp, body := env.do(t, http.MethodPost, "/add_serial_number/", `{"serialnumber":"202505XYZ123456B"}`, env.session(t))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Validation error", body["message"])

		errs := body["errors"].(map[string]interface{})
		assert.Equal(t, []interface{}{domain.ErrInvalidSerialNumber.Error()}, errs["serialnumber"])
	})

	t.Run("blank serial", func(t *testing.T) {
		env := newTestEnv(t)
		resp, body := env.do(t, http.MethodPost, "/add_serial_number/", `{"serialnumber":"   "}`, env.session(t))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		errs := body["errors"].(map[string]interface{})
		assert.Equal(t, []interface{}{"This field is required."}, errs["serialnumber"])
	})

	t.Run("store failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.procs.EXPECT().SaveSerialNumber(gomock.Any(), testSerial, domain.CategoryUPIPlus).
			Return(domain.Outcome{}, errors.New("connection reset"))

		resp, body := env.do(t, http.MethodPost, "/add_serial_number/", `{"serialnumber":"`+testSerial+`"}`, env.session(t))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "connection reset", body["error"])
	})
}

func TestAddUPIProSerial(t *testing.T) {
	env := newTestEnv(t)
	env.procs.EXPECT().SaveUPIProSerialNumber(gomock.Any(), "PRO-0001", domain.CategoryUPIPro, 1, domain.AllocationDistributed).
		Return(domain.Outcome{Status: domain.StatusSuccess, Message: "Serial number saved"}, nil)

	resp, body := env.do(t, http.MethodPost, "/add_upi_pro_serial/", `{"serialnumber":"PRO-0001"}`, env.session(t))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", body["status"])

	resp, body = env.do(t, http.MethodPost, "/add_upi_pro_serial/", `{"other":"x"}`, env.session(t))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Serial number is required", body["message"])
}

func TestApproveSerialNumber(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.session(t)
	gomock.InOrder(
		env.procs.EXPECT().UpdateSerialApproval(gomock.Any(), testSerial, 1).
			Return(domain.Outcome{Status: domain.StatusSuccess, Message: "Serial number approved"}, nil),
		env.procs.EXPECT().UpdateSerialApproval(gomock.Any(), testSerial, 1).
			Return(domain.Outcome{Status: domain.StatusNotFound, Message: "Serial number not found"}, nil),
	)

	resp, body := env.do(t, http.MethodPatch, "/approve_serial_number/", `{"serialnumber":"`+testSerial+`"}`, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Serial number approved", body["message"])

	resp, body = env.do(t, http.MethodPatch, "/approve_serial_number/", `{"serialnumber":"`+testSerial+`"}`, cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", body["status"])

	resp, body = env.do(t, http.MethodPatch, "/approve_serial_number/", `{"serialnumber":null}`, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Serial number is required", body["message"])
}

func TestAllocateSerialNumberAcceptsPostAndPatch(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.session(t)
	env.procs.EXPECT().UpdateSerialAllocation(gomock.Any(), testSerial, domain.AllocationDistributed).
		Return(domain.Outcome{Status: domain.StatusSuccess, Message: "Serial number allocated"}, nil).
		Times(2)

	for _, method := range []string{http.MethodPost, http.MethodPatch} {
		resp, body := env.do(t, method, "/allocate_serial_number/", `{"serialnumber":"`+testSerial+`"}`, cookie)
		assert.Equal(t, http.StatusOK, resp.StatusCode, method)
		assert.Equal(t, "success", body["status"], method)
	}
}

func TestDeactivateSerialNumber(t *testing.T) {
	tests := []struct {
		name   string
		status domain.Status
		code   int
	}{
		{name: "deactivated", status: domain.StatusSuccess, code: http.StatusOK},
		{name: "denied", status: domain.StatusDenied, code: http.StatusForbidden},
		{name: "not found", status: domain.StatusNotFound, code: http.StatusNotFound},
		{name: "other", status: domain.StatusError, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.procs.EXPECT().DeactivateSerialNumber(gomock.Any(), testSerial).
				Return(domain.Outcome{Status: tt.status, Message: "m"}, nil)

			resp, body := env.do(t, http.MethodPost, "/deactivate_serial_number/", `{"serialnumber":"`+testSerial+`"}`, env.session(t))
			assert.Equal(t, tt.code, resp.StatusCode)
			assert.Equal(t, string(tt.status), body["status"])
		})
	}
}

func TestFetchAndReserve(t *testing.T) {
	t.Run("reserved", func(t *testing.T) {
		env := newTestEnv(t)
		gomock.InOrder(
			env.procs.EXPECT().GetSingleUnallocatedApprovedSerial(gomock.Any()).
				Return(testSerial, domain.Outcome{Status: domain.StatusSuccess, Message: "Serial number fetched"}, nil),
			env.procs.EXPECT().UpdateSerialAllocation(gomock.Any(), testSerial, domain.AllocationReserved).
				Return(domain.Outcome{Status: domain.StatusSuccess, Message: "Serial number allocated"}, nil),
		)

		resp, body := env.do(t, http.MethodGet, "/getSerialNumber/", "", env.session(t))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, testSerial, body["serialnumber"])
		assert.Equal(t, "Serial number allocated", body["message"])
		assert.Equal(t, "success", body["status"])
	})

	t.Run("pool empty", func(t *testing.T) {
		env := newTestEnv(t)
		env.procs.EXPECT().GetSingleUnallocatedApprovedSerial(gomock.Any()).
			Return("", domain.Outcome{Status: domain.StatusNotFound, Message: "No serial number available"}, nil)

		resp, body := env.do(t, http.MethodGet, "/getSerialNumber/", "", env.session(t))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "not_found", body["status"])
		assert.Equal(t, "No serial number available", body["message"])
	})

	t.Run("reservation lost", func(t *testing.T) {
		env := newTestEnv(t)
		env.procs.EXPECT().GetSingleUnallocatedApprovedSerial(gomock.Any()).
			Return(testSerial, domain.Outcome{Status: domain.StatusSuccess}, nil)
		env.procs.EXPECT().UpdateSerialAllocation(gomock.Any(), testSerial, domain.AllocationReserved).
			Return(domain.Outcome{Status: domain.StatusNotFound, Message: "Serial number not found"}, nil)

		resp, body := env.do(t, http.MethodGet, "/getSerialNumber/", "", env.session(t))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.NotContains(t, body, "serialnumber")
	})
}

func TestDeviceDetails(t *testing.T) {
	t.Run("missing serial", func(t *testing.T) {
		env := newTestEnv(t)
		resp, body := env.do(t, http.MethodGet, "/get_device_details/", "", env.session(t))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Serial number is required", body["message"])
	})

	t.Run("unknown serial answers 200 with statusCode 404", func(t *testing.T) {
		env := newTestEnv(t)
		env.procs.EXPECT().GetDeviceDetails(gomock.Any(), testSerial).Return(nil, domain.ErrNotFound)

		resp, body := env.do(t, http.MethodGet, "/get_device_details/?serialnumber="+testSerial, "", env.session(t))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(404), body["statusCode"])
		assert.Equal(t, "Device Details Fetch Unsuccessful!", body["message"])
		assert.Equal(t, map[string]interface{}{}, body["data"])
	})

	t.Run("found", func(t *testing.T) {
		env := newTestEnv(t)
		env.procs.EXPECT().GetDeviceDetails(gomock.Any(), testSerial).
			Return(domain.DeviceDetails{"serialNumber": testSerial, "imei": "356938035643809"}, nil)

		resp, body := env.do(t, http.MethodGet, "/get_device_details/?serialnumber="+testSerial, "", env.session(t))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, float64(200), body["statusCode"])
		assert.Equal(t, "Device Details Fetch Succesfully!", body["message"])

		data := body["data"].(map[string]interface{})
		assert.Equal(t, "356938035643809", data["imei"])
		assert.Regexp(t, `^\d{2} \d{2} \d{4}$`, data["date"])
		assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, data["time"])
	})
}
