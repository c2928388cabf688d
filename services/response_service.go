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

type ResponseServiceError string

func (e ResponseServiceError) Error() string { return string(e) }

const (
	ErrResponseInvalidInput ResponseServiceError = "geçersiz yanıt verisi"
	ErrResponseSubmitFailed ResponseServiceError = "yanıt kaydedilemedi"
	ErrResponseQueryFailed  ResponseServiceError = "yanıtlar alınamadı"
)

// IResponseService yanıt gönderme ve listeleme işlemleri için arayüz.
type IResponseService interface {
	SubmitResponse(ctx context.Context, formID string, answers []AnswerInput) (string, error)
	ListResponses(ctx context.Context, formID, ownerID string, page, limit int) (*ResponsePage, error)
}

type ResponseService struct {
	db         *gorm.DB
	formRepo   repositories.IFormRepository
	respRepo   repositories.IResponseRepository
	answerRepo repositories.IAnswerRepository
}

func NewResponseService(db *gorm.DB) IResponseService {
	return &ResponseService{
		db:         db,
		formRepo:   repositories.NewFormRepository(db),
		respRepo:   repositories.NewResponseRepository(db),
		answerRepo: repositories.NewAnswerRepository(db),
	}
}

// SubmitResponse cevapları doğrular ve yanıtı tek transaction içinde kaydeder.
// Herhangi bir hata tüm gönderimi geri alır.
func (s *ResponseService) SubmitResponse(ctx context.Context, formID string, answers []AnswerInput) (string, error) {
	var response models.Response
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		form, err := repositories.NewFormRepositoryTx(tx).FindByID(ctx, formID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrFormNotFound
			}
			return ErrResponseSubmitFailed
		}
		if !form.IsPublic {
			return ErrFormNotFound
		}
		if form.Closed {
			return ErrFormClosed
		}

		if len(answers) == 0 {
			return fmt.Errorf("%w: en az bir cevap gönderilmelidir", ErrResponseInvalidInput)
		}

		questions, err := repositories.NewQuestionRepositoryTx(tx).FindByFormWithOptions(ctx, formID)
		if err != nil {
			return ErrResponseSubmitFailed
		}
		byID := make(map[string]*models.Question, len(questions))
		for i := range questions {
			byID[questions[i].ID] = &questions[i]
		}

		if err := CheckRequiredCoverage(questions, answers); err != nil {
			return err
		}
		for _, a := range answers {
			if err := ValidateAnswer(byID[a.QuestionID], a); err != nil {
				return err
			}
		}

		response = models.Response{FormID: formID}
		if err := repositories.NewResponseRepositoryTx(tx).Create(ctx, &response); err != nil {
			configslog.Log.Error("SubmitResponse: yanıt eklenemedi", zap.String("form_id", formID), zap.Error(err))
			return ErrResponseSubmitFailed
		}

		answerRepoTx := repositories.NewAnswerRepositoryTx(tx)
		for i, a := range answers {
			answer := models.Answer{
				ResponseID: response.ID,
				QuestionID: a.QuestionID,
				AnswerText: trimmedText(a.AnswerText),
				OptionID:   nonBlank(a.OptionID),
				Position:   i,
			}
			if err := answerRepoTx.Create(ctx, &answer); err != nil {
				// Seçenek bu arada silinmiş olabilir
				if errors.Is(err, repositories.ErrReferenceNotFound) {
					return fmt.Errorf("%w: cevaplanan soru veya seçenek artık mevcut değil", ErrResponseInvalidInput)
				}
				configslog.Log.Error("SubmitResponse: cevap eklenemedi", zap.String("response_id", response.ID), zap.Error(err))
				return ErrResponseSubmitFailed
			}
		}
		return nil
	})
	if txErr != nil {
		metrics.ResponseRejections.WithLabelValues(KindOf(txErr).String()).Inc()
		return "", txErr
	}

	metrics.ResponsesSubmitted.Inc()
	configslog.SLog.Infof("Yanıt kaydedildi: form %s, yanıt %s, cevap: %d", formID, response.ID, len(answers))
	return response.ID, nil
}

// trimmedText doğrulanan kırpılmış metni saklar; boş metin NULL olur.
func trimmedText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func nonBlank(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// ListResponses form sahibine yanıtları en yeniden eskiye sayfalı döndürür.
func (s *ResponseService) ListResponses(ctx context.Context, formID, ownerID string, page, limit int) (*ResponsePage, error) {
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrResponseQueryFailed
	}
	ownerOfForm := ""
	if form != nil {
		ownerOfForm = form.UserID
	}
	if ResolveOwnership(form != nil, ownerOfForm, ownerID) != OwnershipOwner {
		return nil, ErrFormNotFound
	}

	params := queryparams.ListParams{Page: page, PerPage: limit}
	params.Validate()

	total, err := s.respRepo.CountByForm(ctx, formID)
	if err != nil {
		return nil, ErrResponseQueryFailed
	}

	responses, err := s.respRepo.FindPageByForm(ctx, formID, params.CalculateOffset(), params.PerPage)
	if err != nil {
		return nil, ErrResponseQueryFailed
	}

	ids := make([]string, 0, len(responses))
	views := make([]ResponseView, 0, len(responses))
	index := make(map[string]int, len(responses))
	for _, r := range responses {
		index[r.ID] = len(views)
		ids = append(ids, r.ID)
		views = append(views, ResponseView{ID: r.ID, CreatedAt: r.CreatedAt, Answers: make([]AnswerView, 0)})
	}

	rows, err := s.answerRepo.FindByResponseIDs(ctx, ids)
	if err != nil {
		return nil, ErrResponseQueryFailed
	}
	for _, row := range rows {
		i, ok := index[row.ResponseID]
		if !ok {
			continue
		}
		views[i].Answers = append(views[i].Answers, AnswerView{
			ID:         row.ID,
			QuestionID: row.QuestionID,
			AnswerText: row.AnswerText,
			OptionID:   row.OptionID,
			OptionText: row.OptionText,
		})
	}

	return &ResponsePage{
		Responses: views,
		Meta:      queryparams.NewPaginationMeta(params, total, len(views)),
	}, nil
}

var _ IResponseService = (*ResponseService)(nil)
