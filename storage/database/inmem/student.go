package inmemdb

import (
	"context"
	"sort"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/student"
)

type studentRepository struct {
	db *studentTable
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) query() []student.Student {
	students := make([]student.Student, 0, len(repo.db.table))
	for _, std := range repo.db.table {
		students = append(students, *std)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students
}

func (repo *studentRepository) CreateStudent(_ context.Context, std student.Student) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, s := range repo.db.table {
		if s.RegNumber == std.RegNumber {
			return student.Student{}, student.ErrRegNumberExists
		}
	}

	repo.db.seq++
	std.ID = core.ID(repo.db.seq)
	repo.db.table[int(std.ID)] = &std
	return std, nil
}

func (repo *studentRepository) QueryAllStudents(_ context.Context, ordering ...core.DBOrdering) ([]student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(_ context.Context, id core.ID) (student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if std, ok := repo.db.table[int(id)]; ok {
		return *std, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) UpdateStudent(_ context.Context, std student.Student) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[int(std.ID)]; !ok {
		return student.Student{}, student.ErrNotFound
	}
	for _, s := range repo.db.table {
		if s.ID != std.ID && s.RegNumber == std.RegNumber {
			return student.Student{}, student.ErrRegNumberExists
		}
	}
	repo.db.table[int(std.ID)] = &std
	return std, nil
}

func (repo *studentRepository) DeleteStudentsByID(_ context.Context, ids ...core.ID) (int64, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	var n int64
	for _, id := range ids {
		if _, ok := repo.db.table[int(id)]; ok {
			delete(repo.db.table, int(id))
			n++
		}
	}
	return n, nil
}
