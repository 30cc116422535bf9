package course_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/course"
	"github.com/malcolm008/RFID-system/core/program"
	logsvc "github.com/malcolm008/RFID-system/services/logger"
	inmemdb "github.com/malcolm008/RFID-system/storage/database/inmem"
)

func setup(t *testing.T) (*course.Service, *program.Service) {
	t.Helper()

	db := inmemdb.NewDB()
	logger := logsvc.NewConsoleLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))

	progRepo := inmemdb.NewProgramRepository(db)
	progSvc := program.NewService(progRepo, logger)
	crsSvc := course.NewService(inmemdb.NewCourseRepository(db), progRepo, logger)
	return crsSvc, progSvc
}

func createProgram(t *testing.T, svc *program.Service, name, qualification, level string, duration int) program.Program {
	t.Helper()

	prog, err := svc.Create(context.Background(), program.NewProgram{
		Name:          name,
		Qualification: qualification,
		Level:         level,
		Duration:      duration,
		Department:    "CS",
	})
	require.NoError(t, err)
	return prog
}

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()

	vErr, ok := err.(*core.ValidationError)
	require.True(t, ok, "expected *core.ValidationError, got %T: %v", err, err)
	fields := make(map[string][]string)
	for _, fErr := range vErr.Fields {
		fields[fErr.Field] = append(fields[fErr.Field], fErr.Error)
	}
	return fields
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("no programs selected", func(t *testing.T) {
		crsSvc, _ := setup(t)

		_, err := crsSvc.Create(ctx, course.NewCourse{
			Name:          "Algorithms",
			Code:          "CS201",
			Qualification: program.QualificationDegree,
			Semester:      1,
			Year:          1,
		})
		fields := fieldErrors(t, err)
		assert.Equal(t, []string{"At least one program must be selected."}, fields["programs"])
	})

	t.Run("unknown program reference", func(t *testing.T) {
		crsSvc, _ := setup(t)

		_, err := crsSvc.Create(ctx, course.NewCourse{
			Name:          "Algorithms",
			Code:          "CS201",
			Qualification: program.QualificationDegree,
			Programs:      []core.ID{99},
			Semester:      1,
			Year:          1,
		})
		fields := fieldErrors(t, err)
		assert.Contains(t, fields["programs"][0], "do not exist")
	})

	t.Run("qualification mismatch names the program", func(t *testing.T) {
		crsSvc, progSvc := setup(t)
		cert := createProgram(t, progSvc, "Networking Basics", program.QualificationCertificate, "", 1)

		_, err := crsSvc.Create(ctx, course.NewCourse{
			Name:          "Algorithms",
			Code:          "CS201",
			Qualification: program.QualificationDegree,
			Programs:      []core.ID{cert.ID},
			Semester:      1,
			Year:          1,
		})
		fields := fieldErrors(t, err)
		require.Len(t, fields["programs"], 1)
		assert.Contains(t, fields["programs"][0], "Networking Basics")
		assert.Contains(t, fields["programs"][0], "Certificate")
	})

	t.Run("year exceeds program duration", func(t *testing.T) {
		crsSvc, progSvc := setup(t)
		bsc := createProgram(t, progSvc, "BSc CS", program.QualificationDegree, program.LevelUndergraduate, 4)

		_, err := crsSvc.Create(ctx, course.NewCourse{
			Name:          "Advanced Topics",
			Code:          "CS501",
			Qualification: program.QualificationDegree,
			Programs:      []core.ID{bsc.ID},
			Semester:      1,
			Year:          5,
		})
		fields := fieldErrors(t, err)
		require.Len(t, fields["year"], 1)
		assert.Contains(t, fields["year"][0], "BSc CS")
		assert.Contains(t, fields["year"][0], "4 years")
	})

	t.Run("ok", func(t *testing.T) {
		crsSvc, progSvc := setup(t)
		bsc := createProgram(t, progSvc, "BSc CS", program.QualificationDegree, program.LevelUndergraduate, 4)

		crs, err := crsSvc.Create(ctx, course.NewCourse{
			Name:          "Algorithms",
			Code:          "CS201",
			Qualification: program.QualificationDegree,
			Programs:      []core.ID{bsc.ID},
			Semester:      1,
			Year:          2,
		})
		require.NoError(t, err)
		assert.NotZero(t, crs.ID)
		assert.Equal(t, []core.ID{bsc.ID}, crs.Programs)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		crsSvc, _ := setup(t)

		_, err := crsSvc.Update(ctx, course.UpdateCourse{ID: 42})
		assert.True(t, core.IsNotFound(err))
	})

	t.Run("merged record is re-checked", func(t *testing.T) {
		crsSvc, progSvc := setup(t)
		bsc := createProgram(t, progSvc, "BSc CS", program.QualificationDegree, program.LevelUndergraduate, 4)

		crs, err := crsSvc.Create(ctx, course.NewCourse{
			Name:          "Algorithms",
			Code:          "CS201",
			Qualification: program.QualificationDegree,
			Programs:      []core.ID{bsc.ID},
			Semester:      1,
			Year:          2,
		})
		require.NoError(t, err)

		// bumping the year past the program duration must fail even though
		// the programs list is untouched
		year := 7
		_, err = crsSvc.Update(ctx, course.UpdateCourse{ID: crs.ID, Year: &year})
		fields := fieldErrors(t, err)
		require.Len(t, fields["year"], 1)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		crsSvc, progSvc := setup(t)
		bsc := createProgram(t, progSvc, "BSc CS", program.QualificationDegree, program.LevelUndergraduate, 4)

		crs, err := crsSvc.Create(ctx, course.NewCourse{
			Name:          "Algorithms",
			Code:          "CS201",
			Qualification: program.QualificationDegree,
			Programs:      []core.ID{bsc.ID},
			Semester:      1,
			Year:          2,
		})
		require.NoError(t, err)

		name := "Algorithms II"
		updated, err := crsSvc.Update(ctx, course.UpdateCourse{ID: crs.ID, Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Algorithms II", updated.Name)
		assert.Equal(t, crs.Code, updated.Code)
		assert.Equal(t, crs.Programs, updated.Programs)
	})
}

func TestService_DeleteMany(t *testing.T) {
	ctx := context.Background()
	crsSvc, progSvc := setup(t)
	bsc := createProgram(t, progSvc, "BSc CS", program.QualificationDegree, program.LevelUndergraduate, 4)

	var ids []core.ID
	for _, code := range []string{"CS101", "CS102"} {
		crs, err := crsSvc.Create(ctx, course.NewCourse{
			Name:          "Course " + code,
			Code:          code,
			Qualification: program.QualificationDegree,
			Programs:      []core.ID{bsc.ID},
			Semester:      1,
			Year:          1,
		})
		require.NoError(t, err)
		ids = append(ids, crs.ID)
	}

	// one existing, one missing: only the existing record counts
	n, err := crsSvc.DeleteMany(ctx, ids[0], 99)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = crsSvc.DeleteMany(ctx, ids...)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
