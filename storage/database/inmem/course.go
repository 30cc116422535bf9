package inmemdb

import (
	"context"
	"sort"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/course"
)

type courseRepository struct {
	db *courseTable
}

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.course}
}

func (repo *courseRepository) query() []course.Course {
	courses := make([]course.Course, 0, len(repo.db.table))
	for _, crs := range repo.db.table {
		courses = append(courses, *crs)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses
}

func (repo *courseRepository) CreateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.seq++
	crs.ID = core.ID(repo.db.seq)
	repo.db.table[int(crs.ID)] = &crs
	return crs, nil
}

func (repo *courseRepository) QueryAllCourses(_ context.Context, ordering ...core.DBOrdering) ([]course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *courseRepository) GetCourseByID(_ context.Context, id core.ID) (course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if crs, ok := repo.db.table[int(id)]; ok {
		return *crs, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) UpdateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[int(crs.ID)]; !ok {
		return course.Course{}, course.ErrNotFound
	}
	repo.db.table[int(crs.ID)] = &crs
	return crs, nil
}

func (repo *courseRepository) DeleteCoursesByID(_ context.Context, ids ...core.ID) (int64, error) {
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
