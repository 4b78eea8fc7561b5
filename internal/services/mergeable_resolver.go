package services

import (
	"context"
	"time"

	domainErrors "github.com/ndelucca/prstatus/internal/domain/errors"
	"github.com/ndelucca/prstatus/internal/domain/ports"
	"github.com/ndelucca/prstatus/internal/i18n"
)

// MergeableResolver consulta al proveedor hasta que la mergeabilidad de una
// PR se resuelve de pendiente a un booleano definido. GitHub la calcula en
// segundo plano: justo después de crear la PR o de pushear commits nuevos el
// valor puede venir ausente por un rato.
type MergeableResolver struct {
	client      ports.VCSClient
	trans       *i18n.Translations
	interval    time.Duration
	maxAttempts int
}

func NewMergeableResolver(client ports.VCSClient, trans *i18n.Translations, interval time.Duration, maxAttempts int) *MergeableResolver {
	return &MergeableResolver{
		client:      client,
		trans:       trans,
		interval:    interval,
		maxAttempts: maxAttempts,
	}
}

// Resolve obtiene la PR y devuelve su mergeabilidad apenas está definida.
// Mientras siga pendiente espera el intervalo configurado y vuelve a
// consultar, hasta maxAttempts consultas; agotado el límite devuelve
// MergeableTimeoutError en lugar de esperar para siempre. El estado
// pendiente no es un error del remoto: es el protocolo definido para un
// valor calculado de forma asíncrona. progress recibe un diagnóstico por
// cada intento sin resolver.
func (r *MergeableResolver) Resolve(ctx context.Context, prNumber int, progress func(string)) (bool, error) {
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		pr, err := r.client.GetPullRequest(ctx, prNumber)
		if err != nil {
			return false, err
		}

		if pr.Mergeable != nil {
			return *pr.Mergeable, nil
		}

		if progress != nil {
			progress(r.trans.GetMessage("info_mergeable_pending", 0, map[string]interface{}{
				"PRNumber":    prNumber,
				"Attempt":     attempt,
				"MaxAttempts": r.maxAttempts,
			}))
		}

		if attempt == r.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(r.interval):
		}
	}

	return false, domainErrors.NewMergeableTimeoutError(prNumber, r.maxAttempts)
}
