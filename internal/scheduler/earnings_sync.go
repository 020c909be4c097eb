package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/vfg2006/earnings-report-api/infrastructure/repository"
	"github.com/vfg2006/earnings-report-api/internal/config"
	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/internal/usecases/reporting"
	"github.com/vfg2006/earnings-report-api/pkg/log"
	"github.com/vfg2006/earnings-report-api/pkg/utils"
)

const dateLayout = "2006-01-02"

// EarningsSyncService agenda e executa a atualização diária dos relatórios
// de faturamento persistidos no config store.
type EarningsSyncService struct {
	scheduler *gocron.Scheduler
	config    *config.Config
	store     repository.ConfigStore
	reporter  reporting.Reporter

	syncMutex       sync.Mutex
	syncRunning     bool
	lastRunID       string
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

func NewEarningsSyncService(
	cfg *config.Config,
	store repository.ConfigStore,
	reporter reporting.Reporter,
) *EarningsSyncService {
	return &EarningsSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cfg,
		store:     store,
		reporter:  reporter,
	}
}

// Start registra o job no cron configurado e inicia o agendador em segundo
// plano. Com a sincronização desabilitada nada é agendado.
func (s *EarningsSyncService) Start(ctx context.Context) error {
	if !s.config.EarningsSync.Enabled {
		log.L.Info("Sincronização diária de faturamento desabilitada")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.EarningsSync.CronSchedule).Do(s.syncEarnings)
	if err != nil {
		return errors.Wrap(err, "erro ao agendar sincronização de faturamento")
	}

	s.scheduler.StartAsync()

	log.L.WithField("cron", s.config.EarningsSync.CronSchedule).
		Info("Sincronização diária de faturamento agendada")

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução fora do horário agendado, recusando
// execuções concorrentes.
func (s *EarningsSyncService) TriggerManualSync() (string, bool) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return "", false
	}
	s.syncMutex.Unlock()

	runID := utils.GenerateRunID()

	go s.runSync(runID)

	return runID, true
}

// GetStatus devolve um resumo do estado atual da sincronização.
func (s *EarningsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":  s.config.EarningsSync.Enabled,
		"schedule": s.config.EarningsSync.CronSchedule,
		"running":  s.syncRunning,
	}

	if s.lastRunID != "" {
		status["lastRunId"] = s.lastRunID
	}
	if !s.lastStartedAt.IsZero() {
		status["lastStartedAt"] = s.lastStartedAt
	}
	if !s.lastCompletedAt.IsZero() {
		status["lastCompletedAt"] = s.lastCompletedAt
	}
	if s.lastError != "" {
		status["lastError"] = s.lastError
	}

	return status
}

func (s *EarningsSyncService) syncEarnings() {
	s.runSync(utils.GenerateRunID())
}

func (s *EarningsSyncService) runSync(runID string) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.WithField("runId", runID).Warn("Sincronização já em andamento, ignorando disparo")
		return
	}
	s.syncRunning = true
	s.lastRunID = runID
	s.lastStartedAt = time.Now()
	s.lastError = ""
	s.syncMutex.Unlock()

	logger := log.L.WithField("runId", runID)
	logger.Info("Iniciando sincronização de faturamento")

	err := s.RunDailyRefresh(time.Now())

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("Sincronização de faturamento terminou com erros")
		return
	}

	logger.Info("Sincronização de faturamento concluída")
}

// RunDailyRefresh monta e persiste os dois relatórios fixos: o acumulado do
// mês corrente e os últimos sete dias. A credencial é resolvida uma única vez
// e falhas de montagem nunca impedem a persistência do que foi montado.
func (s *EarningsSyncService) RunDailyRefresh(now time.Time) error {
	creds, err := reporting.LoadCredentials(s.store)
	if err != nil {
		log.L.WithError(err).Error("Erro ao carregar credenciais, seguindo sem credencial do Meta")
		creds = reporting.Credentials{}
	}

	var failures []error

	if err := s.refreshMonthToDate(now, creds); err != nil {
		failures = append(failures, err)
	}

	if err := s.refreshLastSevenDays(now, creds); err != nil {
		failures = append(failures, err)
	}

	if len(failures) > 0 {
		return failures[0]
	}

	return nil
}

func (s *EarningsSyncService) refreshMonthToDate(now time.Time, creds reporting.Credentials) error {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	since := monthStart.Format(dateLayout)
	until := now.Format(dateLayout)

	combined, err := s.reporter.BuildCombinedReport(now, since, until, creds)
	if err != nil {
		return err
	}

	report := &domain.StoredReport{
		Month:         utils.MonthLabel(now),
		LastUpdated:   time.Now(),
		Facebook:      combined.Facebook.Entities,
		FacebookDaily: combined.Facebook.Daily,
		YouTube:       combined.YouTube.Entities,
		YouTubeDaily:  combined.YouTube.Daily,
	}

	log.L.WithField("month", report.Month).Debugf("Relatório do mês corrente montado: %s", utils.PrettyJson(report))

	if err := s.store.Put(domain.KeyMTDData, report); err != nil {
		return errors.Wrap(err, "erro ao persistir relatório do mês corrente")
	}

	return nil
}

func (s *EarningsSyncService) refreshLastSevenDays(now time.Time, creds reporting.Credentials) error {
	since := now.AddDate(0, 0, -7).Format(dateLayout)
	until := now.Format(dateLayout)

	combined, err := s.reporter.BuildCombinedReport(now, since, until, creds)
	if err != nil {
		return err
	}

	report := &domain.StoredReport{
		Since:         since,
		Until:         until,
		LastUpdated:   time.Now(),
		Facebook:      combined.Facebook.Entities,
		FacebookDaily: combined.Facebook.Daily,
		YouTube:       combined.YouTube.Entities,
		YouTubeDaily:  combined.YouTube.Daily,
	}

	if err := s.store.Put(domain.KeyLast7DaysData, report); err != nil {
		return errors.Wrap(err, "erro ao persistir relatório dos últimos sete dias")
	}

	return nil
}
