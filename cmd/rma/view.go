package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/rental_management_app/internal/adapters/identity"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/core/session"
)

type viewOptions struct {
	email    string
	password string
	role     string
	scoped   bool
	timeout  time.Duration
}

// viewResult is what the view command prints.
type viewResult struct {
	Path        string           `json:"path"`
	State       session.State    `json:"state"`
	Decision    session.Decision `json:"decision"`
	View        any              `json:"view,omitempty"`
	Transitions []string         `json:"transitions"`
}

func viewCmd() *cobra.Command {
	var opts viewOptions
	cmd := &cobra.Command{
		Use:   "view <path>",
		Short: "Resolve a session like a client would and render the page at path",
		Long: "Signs in through a session store, waits for the identity to resolve, " +
			"applies the access guard to path and prints the decision together with the page's view model.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.close()

			res, err := runView(cmd.Context(), a, args[0], opts)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVar(&opts.email, "email", "", "sign in with this email")
	cmd.Flags().StringVar(&opts.password, "password", "", "password for --email")
	cmd.Flags().StringVar(&opts.role, "role", "", "switch to this role after signing in (needs ENABLE_ROLE_SWITCH)")
	cmd.Flags().BoolVar(&opts.scoped, "scoped", true, "send users entering the other role's subtree to their own home")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "how long to wait for the session to resolve")
	return cmd
}

func runView(ctx context.Context, a *app, path string, opts viewOptions) (*viewResult, error) {
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	res := &viewResult{Path: path, Transitions: []string{}}
	var mu sync.Mutex
	storeOpts := []session.Option{
		session.WithLogger(a.logger),
		session.WithFetchTimeout(a.cfg.SessionFetchTimeout),
		session.WithTransitionHook(func(from, to session.State) {
			mu.Lock()
			res.Transitions = append(res.Transitions, from.Status.String()+"->"+to.Status.String())
			mu.Unlock()
			a.metrics.ObserveTransition(from.Status.String(), to.Status.String())
		}),
	}
	if a.cfg.EnableRoleSwitch {
		storeOpts = append(storeOpts, session.WithDemoRoleSwitch())
	}

	store := session.NewStore(identity.NewLocalProvider(a.authority, a.logger), a.services.Profile, storeOpts...)
	store.Start(ctx)
	defer store.Close()

	if _, err := store.WaitResolved(ctx); err != nil {
		return nil, fmt.Errorf("session did not resolve: %w", err)
	}

	if opts.email != "" {
		states, stop := store.Subscribe()
		defer stop()
		if err := store.SignIn(ctx, opts.email, opts.password); err != nil {
			return nil, fmt.Errorf("sign-in failed: %w", err)
		}
		if err := waitFor(ctx, states, session.StatusAuthenticated); err != nil {
			return nil, fmt.Errorf("signed in but the session did not resolve: %w", err)
		}
	}

	if opts.role != "" {
		role, ok := domain.ParseRole(opts.role)
		if !ok {
			return nil, fmt.Errorf("unknown role %q", opts.role)
		}
		if err := store.SwitchRole(ctx, role); err != nil {
			return nil, fmt.Errorf("role switch failed: %w", err)
		}
		a.services.Sessions.Forget(store.CurrentIdentity().ID)
	}

	res.State = store.State()
	if opts.scoped {
		res.Decision = session.DecideScoped(res.State, path)
	} else {
		res.Decision = session.Decide(res.State, path)
	}
	if res.Decision.Kind == session.Permit && res.State.Identity != nil {
		view, err := renderView(ctx, a.services, *res.State.Identity, path)
		if err != nil {
			return nil, err
		}
		res.View = view
	}

	mu.Lock()
	defer mu.Unlock()
	res.Transitions = append([]string(nil), res.Transitions...)
	return res, nil
}

// waitFor blocks until the store reaches want. A sign-in whose profile
// cannot be resolved leaves the store anonymous, so this then runs into
// the deadline.
func waitFor(ctx context.Context, states <-chan session.State, want session.Status) error {
	for {
		select {
		case st, ok := <-states:
			if !ok {
				return session.ErrNotRunning
			}
			if st.Status == want {
				return nil
			}
		case <-ctx.Done():
			return fmt.Errorf("session not %s before deadline: %w", want, ctx.Err())
		}
	}
}

// renderView builds the view model of a permitted page. Pages without a
// view model render nothing.
func renderView(ctx context.Context, svc *portssvc.ServiceContainer, id domain.Identity, path string) (any, error) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSuffix(path, "/")

	switch path {
	case domain.LandlordHome, domain.LandlordHome + "/dashboard":
		return svc.Landlord.Dashboard(ctx)
	case domain.LandlordHome + "/properties":
		return svc.Landlord.ListProperties(ctx)
	case domain.LandlordHome + "/tenants":
		return svc.Landlord.ListTenants(ctx, "all")
	case domain.LandlordHome + "/invoices":
		return svc.Landlord.ListInvoices(ctx, domain.InvoiceFilter{})
	case domain.LandlordHome + "/payments":
		return svc.Landlord.ListPayments(ctx, domain.PaymentFilter{})
	case domain.LandlordHome + "/expenses":
		return svc.Landlord.ListExpenses(ctx, domain.ExpenseFilter{})
	case domain.LandlordHome + "/reports":
		return svc.Reporting.IncomeStatement(ctx, domain.DateRange{})
	case domain.LandlordHome + "/settings":
		return svc.Profile.FetchProfile(ctx, id.ID)
	case domain.TenantHome, domain.TenantHome + "/dashboard":
		return svc.Tenant.Dashboard(ctx, id.ID)
	case domain.TenantHome + "/invoices":
		return svc.Tenant.ListInvoices(ctx, id.ID, "all")
	case domain.TenantHome + "/payments":
		return svc.Tenant.ListPayments(ctx, id.ID)
	case domain.TenantHome + "/credits":
		return svc.Tenant.ListCredits(ctx, id.ID)
	case domain.TenantHome + "/statement":
		return svc.Tenant.Statement(ctx, id.ID)
	case domain.TenantHome + "/profile":
		return svc.Tenant.Profile(ctx, id.ID)
	}
	return nil, nil
}
