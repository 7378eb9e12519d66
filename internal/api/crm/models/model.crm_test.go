// Package models - Test các tập giá trị đóng của module CRM.
package models

import "testing"

func TestIsValidOutcome(t *testing.T) {
	valid := []string{OutcomeCompleted, OutcomeCallback, OutcomeNoAnswer, OutcomeWrongNumber, OutcomeNotInterested}
	for _, outcome := range valid {
		if !IsValidOutcome(outcome) {
			t.Errorf("Outcome %q phải hợp lệ", outcome)
		}
	}

	invalid := []string{"", "done", "COMPLETED", "no_answer", "busy"}
	for _, outcome := range invalid {
		if IsValidOutcome(outcome) {
			t.Errorf("Outcome %q phải bị từ chối (tập đóng)", outcome)
		}
	}
}

func TestIsValidCustomerType(t *testing.T) {
	valid := []string{CustomerTypeCorporate, CustomerTypeRetails, CustomerTypeChannel}
	for _, ct := range valid {
		if !IsValidCustomerType(ct) {
			t.Errorf("Phân khúc %q phải hợp lệ", ct)
		}
	}

	invalid := []string{"", "retails", "CORPORATE", "vip"}
	for _, ct := range invalid {
		if IsValidCustomerType(ct) {
			t.Errorf("Phân khúc %q phải bị từ chối", ct)
		}
	}
}
