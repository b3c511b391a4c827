package employee

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/memory"
)

type fixture struct {
	svc       *EmployeeService
	employees *memory.EmployeeRepository
	users     *memory.UserRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		employees: memory.NewEmployeeRepository(),
		users:     memory.NewUserRepository(),
	}
	f.svc = NewEmployeeService(f.employees, f.users)
	return f
}

func (f *fixture) addUser(username string) string {
	id := uuid.NewString()
	f.users.Seed(user.User{
		ID:       id,
		Username: username,
		Email:    username + "@example.com",
		Roles:    []user.Role{user.RoleEmployee},
	})
	return id
}

func createRequest(email string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:        "Asha",
		LastName:         "Verma",
		Email:            email,
		Department:       "Engineering",
		Designation:      "Engineer",
		JoiningDate:      "2024-03-01",
		EmploymentType:   string(employee.EmploymentTypeFullTime),
		EmploymentStatus: string(employee.EmploymentStatusActive),
		BasicSalary:      "50000",
	}
}

func TestCreate(t *testing.T) {
	t.Run("generates sequential codes", func(t *testing.T) {
		f := newFixture(t)

		for i := 1; i <= 3; i++ {
			created, err := f.svc.Create(context.Background(), createRequest(fmt.Sprintf("emp%d@example.com", i)))
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("EMP%04d", i), created.EmployeeCode)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(context.Background(), createRequest("asha@example.com"))
		require.NoError(t, err)

		_, err = f.svc.Create(context.Background(), createRequest("asha@example.com"))
		assert.ErrorIs(t, err, employee.ErrEmailExists)
	})

	t.Run("links a user account at most once", func(t *testing.T) {
		f := newFixture(t)
		userID := f.addUser("asha")

		req := createRequest("asha@example.com")
		req.UserID = &userID
		_, err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)

		other := createRequest("binod@example.com")
		other.UserID = &userID
		_, err = f.svc.Create(context.Background(), other)
		assert.ErrorIs(t, err, employee.ErrUserAlreadyLinked)
	})

	t.Run("rejects an unknown user link", func(t *testing.T) {
		f := newFixture(t)

		unknown := uuid.NewString()
		req := createRequest("asha@example.com")
		req.UserID = &unknown
		_, err := f.svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestList(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.Create(context.Background(), createRequest("asha@example.com"))
	require.NoError(t, err)

	second := createRequest("binod@example.com")
	second.FirstName = "Binod"
	second.LastName = "Kumar"
	second.Department = "Finance"
	_, err = f.svc.Create(context.Background(), second)
	require.NoError(t, err)

	t.Run("no filter lists everyone", func(t *testing.T) {
		list, err := f.svc.List(context.Background(), "", "", "")
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("department filter", func(t *testing.T) {
		list, err := f.svc.List(context.Background(), "Finance", "", "")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Binod", list[0].FirstName)
	})

	t.Run("search wins over department", func(t *testing.T) {
		list, err := f.svc.List(context.Background(), "Finance", "", "Asha")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, first.ID, list[0].ID)
	})

	t.Run("invalid status yields empty", func(t *testing.T) {
		list, err := f.svc.List(context.Background(), "", "RETIRED", "")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(context.Background(), createRequest("asha@example.com"))
	require.NoError(t, err)

	t.Run("preserves code and keeps own email", func(t *testing.T) {
		req := employee.UpdateEmployeeRequest{CreateEmployeeRequest: createRequest("asha@example.com")}
		req.Designation = "Senior Engineer"

		updated, err := f.svc.Update(context.Background(), created.ID, req)
		require.NoError(t, err)
		assert.Equal(t, created.EmployeeCode, updated.EmployeeCode)
		assert.Equal(t, "Senior Engineer", updated.Designation)
	})

	t.Run("cannot take another employee's email", func(t *testing.T) {
		_, err := f.svc.Create(context.Background(), createRequest("binod@example.com"))
		require.NoError(t, err)

		req := employee.UpdateEmployeeRequest{CreateEmployeeRequest: createRequest("binod@example.com")}
		_, err = f.svc.Update(context.Background(), created.ID, req)
		assert.ErrorIs(t, err, employee.ErrEmailExists)
	})
}

func TestMyProfile(t *testing.T) {
	f := newFixture(t)
	userID := f.addUser("asha")

	req := createRequest("asha@example.com")
	req.UserID = &userID
	created, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	t.Run("resolves via user id", func(t *testing.T) {
		emp, err := f.svc.GetMyProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, emp.ID)
	})

	t.Run("updates only the provided fields", func(t *testing.T) {
		phone := "+91-9876543210"
		city := "Pune"
		emp, err := f.svc.UpdateMyProfile(context.Background(), userID, employee.ProfileUpdateRequest{
			PhoneNumber: &phone,
			City:        &city,
		})
		require.NoError(t, err)
		require.NotNil(t, emp.PhoneNumber)
		assert.Equal(t, phone, *emp.PhoneNumber)
		require.NotNil(t, emp.City)
		assert.Equal(t, city, *emp.City)
		assert.Equal(t, created.Email, emp.Email)
	})

	t.Run("stores a profile image", func(t *testing.T) {
		emp, err := f.svc.UpdateProfileImage(context.Background(), userID, "avatars/asha.png")
		require.NoError(t, err)
		require.NotNil(t, emp.ProfileImage)
		assert.Equal(t, "avatars/asha.png", *emp.ProfileImage)
	})

	t.Run("user without employee record", func(t *testing.T) {
		orphan := f.addUser("orphan")
		_, err := f.svc.GetMyProfile(context.Background(), orphan)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}
