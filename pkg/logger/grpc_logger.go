// File: pkg/logger/grpc_logger.go
package logger

import (
	"context"
	"path"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewGrpcUnaryServerInterceptor는 단일 요청/응답 gRPC 메서드에 대한 로깅 인터셉터를 생성합니다.
func NewGrpcUnaryServerInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		// 요청 시작 시간 기록
		startTime := time.Now()

		// 메서드 이름 추출
		fullMethod := info.FullMethod
		service := path.Dir(fullMethod)[1:]
		method := path.Base(fullMethod)

		// 핸들러 호출 및 응답/에러 캡처
		resp, err = handler(ctx, req)

		// 소요 시간 계산
		duration := time.Since(startTime)

		// 상태 코드 추출
		statusCode := codes.OK
		if err != nil {
			if st, ok := status.FromError(err); ok {
				statusCode = st.Code()
			} else {
				statusCode = codes.Unknown
			}
		}

		fields := []zap.Field{
			zap.String("grpc.service", service),
			zap.String("grpc.method", method),
			zap.String("grpc.code", statusCode.String()),
			zap.Duration("grpc.duration", duration),
		}

		// 로그 레벨 결정
		switch statusCode {
		case codes.OK:
			logger.Info("gRPC 요청 완료", fields...)
		case codes.Canceled, codes.DeadlineExceeded, codes.ResourceExhausted,
			codes.Aborted, codes.Unavailable, codes.DataLoss:
			logger.Warn("gRPC 요청 실패", append(fields, zap.Error(err))...)
		default:
			logger.Error("gRPC 요청 오류", append(fields, zap.Error(err))...)
		}

		return resp, err
	}
}
