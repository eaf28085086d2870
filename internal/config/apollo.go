package config

import (
	"log"
	"strconv"

	agollo "github.com/apolloconfig/agollo/v4"
	"github.com/apolloconfig/agollo/v4/agcache"
	apconf "github.com/apolloconfig/agollo/v4/env/config"
	"github.com/apolloconfig/agollo/v4/storage"
)

// overrideFromApollo starts the Apollo client and overrides config values if
// present. Returns a closer to stop the Apollo client.
func overrideFromApollo(cfg *Config, store *Store) (func(), error) {
	if cfg.Apollo.Addrs == "" || cfg.Apollo.AppID == "" {
		log.Println("apollo: missing APOLLO_ADDRS or APOLLO_APP_ID; skip")
		return nil, nil
	}

	ns := cfg.Apollo.Namespace
	if ns == "" {
		ns = "application"
	}

	appCfg := &apconf.AppConfig{
		AppID:              cfg.Apollo.AppID,
		Cluster:            cfg.Apollo.Cluster,
		NamespaceName:      ns,
		IP:                 cfg.Apollo.Addrs,
		Secret:             cfg.Apollo.AccessKey,
	}

	client, err := agollo.StartWithConfig(func() (*apconf.AppConfig, error) { return appCfg, nil })
	if err != nil {
		return nil, err
	}

	applyApolloOverrides(client, ns, cfg)
	_ = store.UpdateValidated(cfg, map[string]bool{"apollo.init": true})

	client.AddChangeListener(&changeListener{ns: ns, client: client, store: store})

	// agollo v4 exposes no stop API; the closer is a placeholder.
	closer := func() {}
	return closer, nil
}

func getString(cache agcache.CacheInterface, key string, dst *string) {
	if v, err := cache.Get(key); err == nil {
		if s, _ := v.(string); s != "" {
			*dst = s
		}
	}
}

func getIntVal(cache agcache.CacheInterface, key string, dst *int) {
	if v, err := cache.Get(key); err == nil {
		if s, _ := v.(string); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				*dst = n
			}
		}
	}
}

func getBoolVal(cache agcache.CacheInterface, key string, dst *bool) {
	if v, err := cache.Get(key); err == nil {
		if s, _ := v.(string); s != "" {
			if b, err := strconv.ParseBool(s); err == nil {
				*dst = b
			}
		}
	}
}

func applyApolloOverrides(client agollo.Client, namespace string, cfg *Config) {
	cache := client.GetConfigCache(namespace)
	if cache == nil {
		return
	}
	getString(cache, "app.env", &cfg.AppEnv)
	getString(cache, "server.addr", &cfg.Server.Addr)
	getString(cache, "log.level", &cfg.Log.Level)
	getString(cache, "log.format", &cfg.Log.Format)
	getString(cache, "pg.url", &cfg.PG.URL)
	getIntVal(cache, "pg.max_open", &cfg.PG.MaxOpenConns)
	getIntVal(cache, "pg.max_idle", &cfg.PG.MaxIdleConns)
	getString(cache, "redis.addr", &cfg.Redis.Addr)
	getString(cache, "redis.password", &cfg.Redis.Password)
	getIntVal(cache, "redis.db", &cfg.Redis.DB)
	getString(cache, "mq.url", &cfg.MQ.URL)
	getString(cache, "es.addrs", &cfg.ES.Addrs)
	getString(cache, "es.username", &cfg.ES.Username)
	getString(cache, "es.password", &cfg.ES.Password)
	getBoolVal(cache, "fp.cookie_enabled", &cfg.Fingerprint.CookieEnabled)
	getBoolVal(cache, "fp.ip_enabled", &cfg.Fingerprint.IPEnabled)
	getIntVal(cache, "fp.max_age_days", &cfg.Fingerprint.MaxAgeDays)
	getIntVal(cache, "fp.max_per_user", &cfg.Fingerprint.MaxPerUser)
	getIntVal(cache, "fp.sweep_hours", &cfg.Fingerprint.SweepHours)
	getIntVal(cache, "fp.rate_window_sec", &cfg.Fingerprint.RateWindowSec)
	getIntVal(cache, "fp.rate_limit", &cfg.Fingerprint.RateLimit)
}

type changeListener struct {
	ns     string
	client agollo.Client
	store  *Store
}

func (c *changeListener) OnChange(e *storage.ChangeEvent) {
	log.Printf("apollo change: namespace=%s, changes=%d", e.Namespace, len(e.Changes))
	cur := c.store.Get()
	next := cloneConfig(cur)
	applyApolloOverrides(c.client, c.ns, next)
	changed := map[string]bool{}
	for k := range e.Changes {
		changed[k] = true
	}
	_ = c.store.UpdateValidated(next, changed)
}

func (c *changeListener) OnNewestChange(e *storage.FullChangeEvent) {
	log.Printf("apollo full change: namespace=%s, keys=%d", e.Namespace, len(e.Changes))
}

func cloneConfig(c *Config) *Config {
	cp := *c
	return &cp
}
