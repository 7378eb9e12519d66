// Package database - Index bổ sung cho CRM (compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PlatformTravel/crm-sub000/internal/global"
)

// CreateCrmAdditionalIndexes tạo các index bổ sung cho CRM.
// Gọi sau CreateIndexes cho từng collection CRM.
func CreateCrmAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// crm_clients / crm_customers: (status, customerType) — query pool số khả dụng theo phân khúc
	for _, name := range []string{global.MongoDB_ColNames.Clients, global.MongoDB_ColNames.Customers} {
		col := db.Collection(name)
		if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "customerType", Value: 1},
			},
			Options: options.Index().SetName("record_status_type"),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}

		// (status, assignedTo) sparse — liệt kê số đã phân bổ theo agent
		if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "assignedTo", Value: 1},
			},
			Options: options.Index().SetName("record_status_agent").SetSparse(true),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	// crm_assignments: (agentId, status) — danh sách assignment active của một agent
	assignments := db.Collection(global.MongoDB_ColNames.Assignments)
	if _, err := assignments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "agentId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("assignment_agent_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// crm_assignments: (status, called, outcome) — sweep lưu trữ các assignment đã hoàn tất
	if _, err := assignments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "called", Value: 1},
			{Key: "outcome", Value: 1},
		},
		Options: options.Index().SetName("assignment_sweep"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// crm_call_logs: (agentId, callTime) — báo cáo lịch sử gọi theo agent
	callLogs := db.Collection(global.MongoDB_ColNames.CallLogs)
	if _, err := callLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "agentId", Value: 1},
			{Key: "callTime", Value: -1},
		},
		Options: options.Index().SetName("call_log_agent_time"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// auth_login_audits: (username, timestamp) — tra cứu nhật ký đăng nhập theo tài khoản
	loginAudits := db.Collection(global.MongoDB_ColNames.LoginAudits)
	if _, err := loginAudits.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "username", Value: 1},
			{Key: "timestamp", Value: -1},
		},
		Options: options.Index().SetName("login_audit_user_time"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
