package console

import (
	"fmt"
	"strings"

	"ums-console/internal/directory"
	"ums-console/internal/form"
)

func printEmployees(rows []directory.Employee, filterLine string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 96))
	fmt.Printf("  EMPLOYEE RECORDS (%d shown)\n", len(rows))
	if filterLine != "" {
		fmt.Printf("  Filters: %s\n", filterLine)
	}
	fmt.Println(strings.Repeat("=", 96))
	if len(rows) == 0 {
		fmt.Println("  No employee records found.")
		fmt.Println(strings.Repeat("=", 96))
		return
	}
	fmt.Printf("  %-5s %-24s %-7s %-12s %-26s %-13s %s\n", "ID", "EMPLOYEE", "SYSTEM", "ROLE", "EMAIL", "PHONE", "STATUS")
	fmt.Println(strings.Repeat("-", 96))
	for _, e := range rows {
		fmt.Printf("  %-5d %-24s %-7s %-12s %-26s %-13s %s\n",
			e.ID, clip(e.FullName, 24), e.System, clip(e.Role, 12), clip(e.Email, 26), clip(e.PhoneNumber, 13), e.Status)
	}
	fmt.Println(strings.Repeat("=", 96))
}

func printEmployee(e directory.Employee) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 48))
	fmt.Printf("  EMPLOYEE #%d\n", e.ID)
	fmt.Println(strings.Repeat("=", 48))
	fmt.Printf("  Name     : %s\n", e.FullName)
	fmt.Printf("  Username : %s\n", e.Username)
	fmt.Printf("  Email    : %s\n", e.Email)
	fmt.Printf("  Phone    : %s\n", e.PhoneNumber)
	fmt.Printf("  Role     : %s\n", e.Role)
	fmt.Printf("  System   : %s\n", e.System)
	fmt.Printf("  Status   : %s\n", e.Status)
	if e.CreatedAt != "" {
		fmt.Printf("  Created  : %s\n", e.CreatedAt)
	}
	fmt.Println(strings.Repeat("=", 48))
}

func printFieldErrors(f *form.Form) {
	fmt.Println("Please fix the following:")
	// Report in prompt order so the output matches the wizard
	for _, field := range wizardFields {
		if msg, ok := f.Errors[field.key]; ok {
			fmt.Printf("  - %s: %s\n", field.label, msg)
		}
	}
}

func printHelp() {
	fmt.Println(`Commands:
  /list                     show the employee table (honors filters)
  /search <text>            free-text search on name or email
  /role <role>              filter by role (empty clears)
  /system <system>          filter by system (empty clears)
  /clear-filters            reset search and filters
  /view <id>                show one employee record
  /add                      add a new employee
  /edit <id>                edit an employee
  /archive <id>             archive (disable) an employee
  /refresh                  reload the listing from the service
  /sidebar [on|off]         show or set the sidebar preference
  /whoami                   show the logged-in session
  /logout                   clear the stored session and exit
  /exit                     quit`)
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
