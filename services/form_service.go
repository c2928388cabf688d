package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"anket.link/configs/configslog"
	"anket.link/models"
	"anket.link/pkg/metrics"
	"anket.link/pkg/queryparams"
	"anket.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FormServiceError özel servis hataları
type FormServiceError string

func (e FormServiceError) Error() string { return string(e) }

const (
	ErrFormNotFound       FormServiceError = "form bulunamadı"
	ErrFormCreationFailed FormServiceError = "form oluşturulamadı"
	ErrFormUpdateFailed   FormServiceError = "form güncellenemedi"
	ErrFormDeletionFailed FormServiceError = "form silinemedi"
	ErrFormQueryFailed    FormServiceError = "form bilgileri alınamadı"
	ErrFormInvalidInput   FormServiceError = "geçersiz girdi verisi"
	ErrFormClosed         FormServiceError = "form kapalı"
	ErrFormHasNoQuestions FormServiceError = "sorusu olmayan form açılamaz"
)

// IFormService form işlemleri için arayüz.
type IFormService interface {
	CreateForm(ctx context.Context, ownerID string, input CreateFormInput) (string, error)
	PatchForm(ctx context.Context, formID, ownerID string, patch FormPatch) (*models.Form, error)
	DeleteForm(ctx context.Context, formID, ownerID string) error
	GetFormForViewer(ctx context.Context, formID, viewerID string) (*FormView, error)
	GetFormDetail(ctx context.Context, formID, ownerID string) (*FormDetailView, error)
	ListForms(ctx context.Context, ownerID string, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
}

// FormService IFormService arayüzünü uygular.
type FormService struct {
	db           *gorm.DB
	repo         repositories.IFormRepository
	questionRepo repositories.IQuestionRepository
}

func NewFormService(db *gorm.DB) IFormService {
	return &FormService{
		db:           db,
		repo:         repositories.NewFormRepository(db),
		questionRepo: repositories.NewQuestionRepository(db),
	}
}

// --- Yardımcı Metodlar ---

// ValidateCreateFormInput temel validasyonları yapar.
func ValidateCreateFormInput(input CreateFormInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: form başlığı zorunludur", ErrFormInvalidInput)
	}
	for i, q := range input.Questions {
		if strings.TrimSpace(q.QuestionText) == "" {
			return fmt.Errorf("%w: %d. sorunun metni boş", ErrFormInvalidInput, i+1)
		}
		if !q.QuestionType.IsValid() {
			return fmt.Errorf("%w: %d. sorunun tipi geçersiz: %q", ErrFormInvalidInput, i+1, q.QuestionType)
		}
		if q.QuestionType != models.QuestionTypeCheckbox {
			continue
		}
		for _, o := range q.Options {
			if strings.TrimSpace(o.OptionText) == "" {
				return fmt.Errorf("%w: %d. sorunun seçenek metni boş", ErrFormInvalidInput, i+1)
			}
		}
	}
	return nil
}

func validateFormPatch(patch FormPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("%w: güncellenecek en az bir alan gönderilmelidir", ErrFormInvalidInput)
	}
	if title, ok := patch.Title.Get(); ok && strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: form başlığı boş olamaz", ErrFormInvalidInput)
	}
	return nil
}

// formPatchUpdates yalnızca gönderilen kolonları içeren güncelleme haritası.
func formPatchUpdates(patch FormPatch) map[string]interface{} {
	updates := make(map[string]interface{})
	if title, ok := patch.Title.Get(); ok {
		updates["title"] = strings.TrimSpace(title)
	}
	if description, ok := patch.Description.Get(); ok {
		if strings.TrimSpace(description) == "" {
			updates["description"] = nil
		} else {
			updates["description"] = description
		}
	}
	if isPublic, ok := patch.IsPublic.Get(); ok {
		updates["is_public"] = isPublic
	}
	if closed, ok := patch.Closed.Get(); ok {
		updates["closed"] = closed
	}
	return updates
}

// --- Servis Metodları ---

// CreateForm formu, sorularını ve checkbox seçeneklerini tek transaction içinde oluşturur.
func (s *FormService) CreateForm(ctx context.Context, ownerID string, input CreateFormInput) (string, error) {
	if ownerID == "" {
		return "", fmt.Errorf("%w: geçersiz kullanıcı", ErrFormInvalidInput)
	}
	if err := ValidateCreateFormInput(input); err != nil {
		return "", err
	}

	form := models.Form{
		UserID:      ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Closed:      false,
		IsPublic:    false,
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		formRepoTx := repositories.NewFormRepositoryTx(tx)
		questionRepoTx := repositories.NewQuestionRepositoryTx(tx)
		optionRepoTx := repositories.NewOptionRepositoryTx(tx)

		if err := formRepoTx.Create(ctx, &form); err != nil {
			configslog.Log.Error("CreateForm: form eklenemedi", zap.String("owner_id", ownerID), zap.Error(err))
			return ErrFormCreationFailed
		}

		for _, in := range input.Questions {
			isRequired := true
			if in.IsRequired != nil {
				isRequired = *in.IsRequired
			}
			question := models.Question{
				FormID:       form.ID,
				QuestionText: strings.TrimSpace(in.QuestionText),
				QuestionType: in.QuestionType,
				IsRequired:   isRequired,
				OrderIndex:   in.OrderIndex,
			}
			if err := questionRepoTx.Create(ctx, &question); err != nil {
				configslog.Log.Error("CreateForm: soru eklenemedi", zap.String("form_id", form.ID), zap.Error(err))
				return ErrFormCreationFailed
			}

			// Checkbox dışındaki soruların seçenekleri yok sayılır
			if in.QuestionType != models.QuestionTypeCheckbox || len(in.Options) == 0 {
				continue
			}
			options := make([]models.Option, 0, len(in.Options))
			for _, o := range in.Options {
				options = append(options, models.Option{
					QuestionID: question.ID,
					OptionText: strings.TrimSpace(o.OptionText),
					OrderIndex: o.OrderIndex,
				})
			}
			if err := optionRepoTx.CreateBatch(ctx, options); err != nil {
				configslog.Log.Error("CreateForm: seçenekler eklenemedi", zap.String("question_id", question.ID), zap.Error(err))
				return ErrFormCreationFailed
			}
		}
		return nil
	})
	if txErr != nil {
		return "", txErr
	}

	metrics.FormsCreated.Inc()
	configslog.SLog.Infof("Form başarıyla oluşturuldu: ID %s, Başlık: %s, Soru: %d", form.ID, form.Title, len(input.Questions))
	return form.ID, nil
}

// PatchForm yalnızca gönderilen alanları günceller. Form yoksa veya başkasına aitse ErrFormNotFound.
func (s *FormService) PatchForm(ctx context.Context, formID, ownerID string, patch FormPatch) (*models.Form, error) {
	if err := validateFormPatch(patch); err != nil {
		return nil, err
	}

	var updated *models.Form
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		formRepoTx := repositories.NewFormRepositoryTx(tx)

		// Soru silme ile yarışmaması için form satırı kilitlenir
		locked, err := formRepoTx.FindByIDForUpdate(ctx, formID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return ErrFormUpdateFailed
		}
		ownerOfForm := ""
		if locked != nil {
			ownerOfForm = locked.UserID
		}
		if ResolveOwnership(locked != nil, ownerOfForm, ownerID) != OwnershipOwner {
			return ErrFormNotFound
		}

		// Sorusu olmayan form tekrar açılamaz
		if closed, ok := patch.Closed.Get(); ok && !closed {
			count, err := repositories.NewQuestionRepositoryTx(tx).CountByForm(ctx, formID)
			if err != nil {
				return ErrFormUpdateFailed
			}
			if count == 0 {
				return ErrFormHasNoQuestions
			}
		}

		if err := formRepoTx.UpdateByOwner(ctx, formID, ownerID, formPatchUpdates(patch)); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrFormNotFound
			}
			return ErrFormUpdateFailed
		}

		form, err := formRepoTx.FindByID(ctx, formID)
		if err != nil {
			return ErrFormUpdateFailed
		}
		updated = form
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Form güncellendi: ID %s", formID)
	return updated, nil
}

// DeleteForm formu ve tüm alt kayıtlarını siler.
func (s *FormService) DeleteForm(ctx context.Context, formID, ownerID string) error {
	if err := s.repo.DeleteByOwner(ctx, formID, ownerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFormNotFound
		}
		return ErrFormDeletionFailed
	}
	configslog.SLog.Infof("Form silindi: ID %s", formID)
	return nil
}

// GetFormForViewer formu doldurma ekranı için getirir. viewerID boşsa anonim izleyicidir.
func (s *FormService) GetFormForViewer(ctx context.Context, formID, viewerID string) (*FormView, error) {
	form, err := s.repo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, ErrFormQueryFailed
	}

	switch ResolveFormAccess(form, viewerID) {
	case FormAccessClosed:
		return &FormView{ID: form.ID, Closed: true}, nil
	case FormAccessHidden:
		return nil, ErrFormNotFound
	}

	questions, err := s.questionRepo.FindByFormWithOptions(ctx, form.ID)
	if err != nil {
		return nil, ErrFormQueryFailed
	}

	return &FormView{
		ID:          form.ID,
		Title:       form.Title,
		Description: form.Description,
		Questions:   newQuestionViews(questions),
	}, nil
}

// GetFormDetail sahibin düzenleme görünümü; kapalı formlar da döner.
func (s *FormService) GetFormDetail(ctx context.Context, formID, ownerID string) (*FormDetailView, error) {
	form, err := s.repo.FindByID(ctx, formID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrFormQueryFailed
	}
	ownerOfForm := ""
	if form != nil {
		ownerOfForm = form.UserID
	}
	if ResolveOwnership(form != nil, ownerOfForm, ownerID) != OwnershipOwner {
		return nil, ErrFormNotFound
	}

	questions, err := s.questionRepo.FindByFormWithOptions(ctx, form.ID)
	if err != nil {
		return nil, ErrFormQueryFailed
	}

	return &FormDetailView{
		ID:          form.ID,
		Title:       form.Title,
		Description: form.Description,
		Closed:      form.Closed,
		IsPublic:    form.IsPublic,
		CreatedAt:   form.CreatedAt,
		UpdatedAt:   form.UpdatedAt,
		Questions:   newQuestionViews(questions),
	}, nil
}

// ListForms kullanıcının formlarını yanıt sayılarıyla sayfalı listeler.
func (s *FormService) ListForms(ctx context.Context, ownerID string, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	items, total, err := s.repo.FindAllByOwnerPaginated(ctx, ownerID, params)
	if err != nil {
		configslog.Log.Error("ListForms: formlar listelenemedi", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, ErrFormQueryFailed
	}

	return &queryparams.PaginatedResult{
		Data: items,
		Meta: queryparams.NewPaginationMeta(params, total, len(items)),
	}, nil
}

var _ IFormService = (*FormService)(nil)
