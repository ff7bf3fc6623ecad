package auth

import "testing"

func TestAdminScope(t *testing.T) {
	admin := Principal{PrincipalID: "org-1", OrganizationID: "org-1", Role: RoleAdmin}

	if !admin.IsAdmin() || admin.IsEmployee() {
		t.Fatalf("unexpected role classification: %+v", admin)
	}
	if admin.TaskScope() != "" {
		t.Fatalf("admin task scope should be unrestricted, got %q", admin.TaskScope())
	}
	if !admin.CanManageTasks() {
		t.Fatal("admin should manage tasks")
	}
	if !admin.CanUpdateTaskStatus("emp-9") {
		t.Fatal("admin should update any task status in the org")
	}
}

func TestEmployeeScope(t *testing.T) {
	emp := Principal{PrincipalID: "emp-1", OrganizationID: "org-1", Role: RoleEmployee}

	if emp.IsAdmin() || !emp.IsEmployee() {
		t.Fatalf("unexpected role classification: %+v", emp)
	}
	if emp.TaskScope() != "emp-1" {
		t.Fatalf("employee task scope should be own id, got %q", emp.TaskScope())
	}
	if emp.CanManageTasks() {
		t.Fatal("employee must not manage tasks")
	}
	if !emp.CanUpdateTaskStatus("emp-1") {
		t.Fatal("employee should update own task status")
	}
	if emp.CanUpdateTaskStatus("emp-2") {
		t.Fatal("employee must not update another employee's task")
	}
}
