package services

import (
	"testing"

	"github.com/civicgate/civic-portal/internal/dto"
	"github.com/civicgate/civic-portal/internal/models"
	"github.com/civicgate/civic-portal/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPosition(t *testing.T, db *gorm.DB, municipality models.Municipality, user models.User) models.Position {
	t.Helper()
	position := models.Position{
		Name:           "clerk",
		MunicipalityID: &municipality.ID,
		UserID:         &user.ID,
	}
	require.NoError(t, db.Create(&position).Error)
	return position
}

func TestSubmitPersistsAppealAndLinkedPhotos(t *testing.T) {
	db := openTestDB(t)
	svc := NewAppealService(db, t.TempDir())
	city := seedCity(t, db)
	municipality := seedMunicipality(t, db, city)
	citizen := seedUser(t, db, city, models.RoleCitizen, nil)

	files := makeUploadFiles(t, "image/jpeg", "image/png", "image/webp")
	appeal, err := svc.Submit(citizen.ID, &dto.CreateAppealRequest{
		Title:          "broken streetlight",
		Text:           "dark on Lenina street",
		MunicipalityID: &municipality.ID,
	}, files)
	require.NoError(t, err)
	assert.False(t, appeal.IsAnswered)

	var stored models.Appeal
	require.NoError(t, db.Preload("Photos").First(&stored, appeal.ID).Error)
	assert.Len(t, stored.Photos, 3)

	var photoCount int64
	require.NoError(t, db.Model(&models.Photo{}).Count(&photoCount).Error)
	assert.Equal(t, int64(3), photoCount)
}

func TestSubmitWithoutMunicipalityOrPhotos(t *testing.T) {
	db := openTestDB(t)
	svc := NewAppealService(db, t.TempDir())
	city := seedCity(t, db)
	citizen := seedUser(t, db, city, models.RoleCitizen, nil)

	appeal, err := svc.Submit(citizen.ID, &dto.CreateAppealRequest{
		Title: "no photos",
		Text:  "text only",
	}, nil)
	require.NoError(t, err)
	assert.Nil(t, appeal.MunicipalityID)
}

func TestSubmitRejectsMixedBatchEntirely(t *testing.T) {
	db := openTestDB(t)
	svc := NewAppealService(db, t.TempDir())
	city := seedCity(t, db)
	citizen := seedUser(t, db, city, models.RoleCitizen, nil)

	files := makeUploadFiles(t, "image/jpeg", "text/plain", "image/png")
	_, err := svc.Submit(citizen.ID, &dto.CreateAppealRequest{
		Title: "mixed",
		Text:  "body",
	}, files)
	assert.ErrorIs(t, err, storage.ErrNotAnImage)

	var appealCount, photoCount int64
	require.NoError(t, db.Model(&models.Appeal{}).Count(&appealCount).Error)
	require.NoError(t, db.Model(&models.Photo{}).Count(&photoCount).Error)
	assert.Zero(t, appealCount)
	assert.Zero(t, photoCount)
}

func TestSubmitRejectsUnknownMunicipality(t *testing.T) {
	db := openTestDB(t)
	svc := NewAppealService(db, t.TempDir())
	city := seedCity(t, db)
	citizen := seedUser(t, db, city, models.RoleCitizen, nil)

	missing := uint(9999)
	_, err := svc.Submit(citizen.ID, &dto.CreateAppealRequest{
		Title:          "nowhere",
		Text:           "body",
		MunicipalityID: &missing,
	}, nil)
	assert.ErrorIs(t, err, ErrMunicipalityNotFound)
}

func TestListForMunicipalityScopesToOwn(t *testing.T) {
	db := openTestDB(t)
	svc := NewAppealService(db, t.TempDir())
	city := seedCity(t, db)
	muniA := seedMunicipality(t, db, city)
	muniB := seedMunicipality(t, db, city)
	citizen := seedUser(t, db, city, models.RoleCitizen, nil)
	worker := seedUser(t, db, city, models.RoleMunicipalityWorker, &muniA.ID)

	_, err := svc.Submit(citizen.ID, &dto.CreateAppealRequest{Title: "to A", Text: "x", MunicipalityID: &muniA.ID}, nil)
	require.NoError(t, err)
	_, err = svc.Submit(citizen.ID, &dto.CreateAppealRequest{Title: "to B", Text: "x", MunicipalityID: &muniB.ID}, nil)
	require.NoError(t, err)

	appeals, err := svc.ListForMunicipality(worker.ID)
	require.NoError(t, err)
	require.Len(t, appeals, 1)
	assert.Equal(t, "to A", appeals[0].Title)

	// A worker without a municipality sees nothing.
	unassigned := seedUser(t, db, city, models.RoleMunicipalityWorker, nil)
	appeals, err = svc.ListForMunicipality(unassigned.ID)
	require.NoError(t, err)
	assert.Empty(t, appeals)
}

func TestAnswerFlipsFlagAndWritesOneAnswer(t *testing.T) {
	db := openTestDB(t)
	svc := NewAppealService(db, t.TempDir())
	city := seedCity(t, db)
	municipality := seedMunicipality(t, db, city)
	citizen := seedUser(t, db, city, models.RoleCitizen, nil)
	worker := seedUser(t, db, city, models.RoleMunicipalityWorker, &municipality.ID)
	position := seedPosition(t, db, municipality, worker)

	appeal, err := svc.Submit(citizen.ID, &dto.CreateAppealRequest{
		Title:          "pothole",
		Text:           "deep one",
		MunicipalityID: &municipality.ID,
	}, nil)
	require.NoError(t, err)

	answer, err := svc.Answer(worker.ID, appeal.ID, "crew dispatched")
	require.NoError(t, err)
	require.NotNil(t, answer.AnswererID)
	assert.Equal(t, position.ID, *answer.AnswererID)

	var stored models.Appeal
	require.NoError(t, db.First(&stored, appeal.ID).Error)
	assert.True(t, stored.IsAnswered)

	var answerCount, notificationCount int64
	require.NoError(t, db.Model(&models.AppealAnswer{}).Where("appeal_id = ?", appeal.ID).Count(&answerCount).Error)
	require.NoError(t, db.Model(&models.Notification{}).Count(&notificationCount).Error)
	assert.Equal(t, int64(1), answerCount)
	assert.Equal(t, int64(1), notificationCount)

	// A second answer is rejected outright.
	_, err = svc.Answer(worker.ID, appeal.ID, "again")
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	require.NoError(t, db.Model(&models.AppealAnswer{}).Where("appeal_id = ?", appeal.ID).Count(&answerCount).Error)
	assert.Equal(t, int64(1), answerCount)
}

func TestAnswerUnknownAppeal(t *testing.T) {
	db := openTestDB(t)
	svc := NewAppealService(db, t.TempDir())
	city := seedCity(t, db)
	municipality := seedMunicipality(t, db, city)
	worker := seedUser(t, db, city, models.RoleMunicipalityWorker, &municipality.ID)
	seedPosition(t, db, municipality, worker)

	_, err := svc.Answer(worker.ID, 12345, "to whom?")
	assert.ErrorIs(t, err, ErrAppealNotFound)
}

func TestAnswerRequiresPosition(t *testing.T) {
	db := openTestDB(t)
	svc := NewAppealService(db, t.TempDir())
	city := seedCity(t, db)
	municipality := seedMunicipality(t, db, city)
	citizen := seedUser(t, db, city, models.RoleCitizen, nil)
	worker := seedUser(t, db, city, models.RoleMunicipalityWorker, &municipality.ID)

	appeal, err := svc.Submit(citizen.ID, &dto.CreateAppealRequest{
		Title:          "no position",
		Text:           "x",
		MunicipalityID: &municipality.ID,
	}, nil)
	require.NoError(t, err)

	_, err = svc.Answer(worker.ID, appeal.ID, "unauthorized")
	assert.ErrorIs(t, err, ErrNoPosition)
}
