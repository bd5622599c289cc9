package fixtures

// ==========================================
// DEFAULT DIRECTORY DATA
// ==========================================

// DefaultDepartments are seeded into an empty directory at startup.
var DefaultDepartments = []string{
	"Finance",
	"Human Resources",
	"Information Technology",
	"Marketing",
	"Operations",
	"Sales",
}

// DefaultEmployee pairs an employee with its department by name so the
// seeder can resolve department IDs after inserting departments.
type DefaultEmployee struct {
	Code       string
	Name       string
	Department string
}

// DefaultEmployees are seeded into an empty directory at startup.
var DefaultEmployees = []DefaultEmployee{
	{Code: "HR001", Name: "John Smith", Department: "Human Resources"},
	{Code: "HR002", Name: "Sarah Johnson", Department: "Human Resources"},
	{Code: "IT001", Name: "Mike Davis", Department: "Information Technology"},
	{Code: "IT002", Name: "Emily Chen", Department: "Information Technology"},
	{Code: "IT003", Name: "David Wilson", Department: "Information Technology"},
	{Code: "FIN001", Name: "Lisa Brown", Department: "Finance"},
	{Code: "FIN002", Name: "Robert Taylor", Department: "Finance"},
	{Code: "MKT001", Name: "Jennifer Lee", Department: "Marketing"},
	{Code: "OPS001", Name: "James Miller", Department: "Operations"},
	{Code: "SAL001", Name: "Patricia Moore", Department: "Sales"},
}
