package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wekeepgrowing/memberchat/internal/adapter/repository"
	"github.com/wekeepgrowing/memberchat/internal/config"
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/db"
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/grpc"
	"github.com/wekeepgrowing/memberchat/internal/infrastructure/http"
	appinit "github.com/wekeepgrowing/memberchat/internal/init"
	"go.uber.org/zap"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 2. 로거 가져오기
	logger := cfg.Logger
	defer logger.Sync()

	logger.Info("회원 채팅 서비스를 시작합니다...",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
	)

	// 3. 인프라스트럭처 초기화
	infrastructure, err := db.NewInfrastructure(cfg)
	if err != nil {
		logger.Fatal("인프라스트럭처 초기화 실패", zap.Error(err))
	}
	defer infrastructure.Close()

	// 4. 레포지토리 초기화
	repositories := repository.InitRepositories(infrastructure.DB)

	// 5. 유스케이스 초기화
	useCases := appinit.NewUseCases(cfg, repositories, infrastructure.Publisher, logger)

	// 6. HTTP 서버 설정
	httpConfig := http.Config{
		Port:    cfg.Server.HTTP.Port,
		Timeout: cfg.Server.HTTP.Timeout,
		Debug:   cfg.Server.HTTP.Debug,
	}

	// 7. HTTP 서버 생성 및 라우트 등록
	httpServer := http.NewServer(httpConfig, logger)
	httpServer.RegisterRoutes(useCases)

	// 8. gRPC 서버 설정
	grpcConfig := grpc.Config{
		Port:    cfg.Server.GRPC.Port,
		Timeout: cfg.Server.GRPC.Timeout,
	}

	// 9. gRPC 서버 생성
	grpcServer := grpc.NewServer(grpcConfig, logger)

	// 10. 서버 시작
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Error("HTTP 서버 종료", zap.Error(err))
		}
	}()

	go func() {
		if err := grpcServer.Start(); err != nil {
			logger.Error("gRPC 서버 종료", zap.Error(err))
		}
	}()

	// 11. 그레이스풀 종료를 위한 시그널 처리
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("서버를 종료합니다...")

	// 서버 종료
	if err := httpServer.Stop(); err != nil {
		logger.Error("HTTP 서버 종료 오류", zap.Error(err))
	}

	grpcServer.Stop()

	logger.Info("서버가 정상적으로 종료되었습니다")
}
