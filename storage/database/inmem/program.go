package inmemdb

import (
	"context"
	"sort"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/program"
)

type programRepository struct {
	db *programTable
}

func NewProgramRepository(db *DB) program.Repository {
	return &programRepository{db: db.program}
}

func (repo *programRepository) query() []program.Program {
	programs := make([]program.Program, 0, len(repo.db.table))
	for _, prog := range repo.db.table {
		programs = append(programs, *prog)
	}
	sort.Slice(programs, func(i, j int) bool { return programs[i].ID < programs[j].ID })
	return programs
}

func (repo *programRepository) CreateProgram(_ context.Context, prog program.Program) (program.Program, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.seq++
	prog.ID = core.ID(repo.db.seq)
	repo.db.table[int(prog.ID)] = &prog
	return prog, nil
}

func (repo *programRepository) QueryAllPrograms(_ context.Context, ordering ...core.DBOrdering) ([]program.Program, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *programRepository) GetProgramByID(_ context.Context, id core.ID) (program.Program, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if prog, ok := repo.db.table[int(id)]; ok {
		return *prog, nil
	}
	return program.Program{}, program.ErrNotFound
}

func (repo *programRepository) GetProgramsByID(_ context.Context, ids ...core.ID) ([]program.Program, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	programs := make([]program.Program, 0, len(ids))
	seen := make(map[core.ID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if prog, ok := repo.db.table[int(id)]; ok {
			programs = append(programs, *prog)
		}
	}
	return programs, nil
}

func (repo *programRepository) UpdateProgram(_ context.Context, prog program.Program) (program.Program, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[int(prog.ID)]; !ok {
		return program.Program{}, program.ErrNotFound
	}
	repo.db.table[int(prog.ID)] = &prog
	return prog, nil
}

func (repo *programRepository) DeleteProgramsByID(_ context.Context, ids ...core.ID) (int64, error) {
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
