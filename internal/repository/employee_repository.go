package repository

import (
	"github.com/yukikurage/employee-management-api/internal/database"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEmployeeRepository is a GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Omit(clause.Associations).Create(employee).Error
}

func (r *GormEmployeeRepository) FindActiveByID(id uint64) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.
		Scopes(database.Active).
		Preload("Laptop").
		Preload("Team").
		Preload("Tools", func(db *gorm.DB) *gorm.DB {
			return db.Order("tools.id")
		}).
		First(&employee, id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) ListActive(params utils.PaginationParams) ([]models.Employee, error) {
	employees := []models.Employee{}
	err := r.db.
		Scopes(database.Active, database.Paginate(params)).
		Order("id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepository) ExistsActiveByPhoneOrEmail(phoneNumber int64, email string, excludeID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).
		Scopes(database.Active).
		Where("(phone_number = ? OR email = ?)", phoneNumber, email).
		Where("id <> ?", excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormEmployeeRepository) UpdateFields(employee *models.Employee) error {
	return r.db.Model(&models.Employee{}).
		Where("id = ?", employee.ID).
		Updates(map[string]interface{}{
			"name":         employee.Name,
			"dob":          employee.DOB,
			"email":        employee.Email,
			"role":         employee.Role,
			"phone_number": employee.PhoneNumber,
		}).Error
}

func (r *GormEmployeeRepository) SoftDelete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var employee models.Employee
		if err := tx.Select("id", "laptop_id").First(&employee, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Employee{}).Where("id = ?", id).Update("is_deleted", true).Error; err != nil {
			return err
		}

		if employee.LaptopID == nil {
			return nil
		}
		return tx.Model(&models.Laptop{}).Where("id = ?", *employee.LaptopID).Update("is_deleted", true).Error
	})
}

func (r *GormEmployeeRepository) AttachLaptop(employeeID uint64, laptop *models.Laptop) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(laptop).Error; err != nil {
			return err
		}
		return tx.Model(&models.Employee{}).Where("id = ?", employeeID).Update("laptop_id", laptop.ID).Error
	})
}

func (r *GormEmployeeRepository) DetachLaptop(employeeID, laptopID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Laptop{}).Where("id = ?", laptopID).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.Employee{}).Where("id = ?", employeeID).Update("laptop_id", nil).Error
	})
}

func (r *GormEmployeeRepository) SetTeam(employeeID uint64, teamID *uint64) error {
	return r.db.Model(&models.Employee{}).Where("id = ?", employeeID).Update("team_id", teamID).Error
}

// AddTool appends to the join table only; the tool row must already exist.
// Re-adding an associated tool is a no-op.
func (r *GormEmployeeRepository) AddTool(employeeID uint64, tool *models.Tool) error {
	employee := &models.Employee{ID: employeeID}
	return r.db.Model(employee).Omit("Tools.*").Association("Tools").Append(tool)
}

func (r *GormEmployeeRepository) ClearTools(employeeID uint64) error {
	employee := &models.Employee{ID: employeeID}
	return r.db.Model(employee).Association("Tools").Clear()
}
