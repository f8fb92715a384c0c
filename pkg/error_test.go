package pkg

import (
	"errors"
	"testing"
)

func TestRequestResult_String(t *testing.T) {
	tests := []struct {
		result RequestResult
		want   string
	}{
		{ResultAck, "ack"},
		{ResultReject, "reject"},
		{RequestResult(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.result.String(); got != tt.want {
				t.Errorf("RequestResult.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequestResult_Error(t *testing.T) {
	tests := []struct {
		result  RequestResult
		wantErr error
	}{
		{ResultAck, nil},
		{ResultReject, ErrInvalidRequest},
		{RequestResult(99), ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.result.String(), func(t *testing.T) {
			err := tt.result.Error()
			if tt.wantErr == nil && err != nil {
				t.Errorf("RequestResult.Error() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("RequestResult.Error() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	errs := []error{
		ErrInvalidReportID,
		ErrWrongInterface,
		ErrInvalidRequest,
		ErrSetupPacketTooShort,
		ErrBufferTooSmall,
		ErrInvalidParameter,
		ErrCancelled,
	}

	for i, err1 := range errs {
		if err1 == nil {
			t.Errorf("error %d is nil", i)
			continue
		}
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("error %d and %d are equal", i, j)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err     error
		wantMsg string
	}{
		{ErrInvalidReportID, "invalid report ID"},
		{ErrWrongInterface, "wrong interface"},
		{ErrSetupPacketTooShort, "setup packet too short"},
		{ErrInvalidParameter, "invalid parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("error.Error() = %v, want %v", got, tt.wantMsg)
			}
		})
	}
}
