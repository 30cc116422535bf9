package inmemdb

import (
	"context"
	"sort"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/teacher"
)

type teacherRepository struct {
	db *teacherTable
}

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db.teacher}
}

func (repo *teacherRepository) query() []teacher.Teacher {
	teachers := make([]teacher.Teacher, 0, len(repo.db.table))
	for _, tch := range repo.db.table {
		teachers = append(teachers, *tch)
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers
}

func (repo *teacherRepository) CreateTeacher(_ context.Context, tch teacher.Teacher) (teacher.Teacher, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, t := range repo.db.table {
		if t.Email == tch.Email {
			return teacher.Teacher{}, teacher.ErrEmailExists
		}
	}

	repo.db.seq++
	tch.ID = core.ID(repo.db.seq)
	repo.db.table[int(tch.ID)] = &tch
	return tch, nil
}

func (repo *teacherRepository) QueryAllTeachers(_ context.Context, ordering ...core.DBOrdering) ([]teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *teacherRepository) GetTeacherByID(_ context.Context, id core.ID) (teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if tch, ok := repo.db.table[int(id)]; ok {
		return *tch, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) UpdateTeacher(_ context.Context, tch teacher.Teacher) (teacher.Teacher, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[int(tch.ID)]; !ok {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	for _, t := range repo.db.table {
		if t.ID != tch.ID && t.Email == tch.Email {
			return teacher.Teacher{}, teacher.ErrEmailExists
		}
	}
	repo.db.table[int(tch.ID)] = &tch
	return tch, nil
}

func (repo *teacherRepository) DeleteTeachersByID(_ context.Context, ids ...core.ID) (int64, error) {
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
