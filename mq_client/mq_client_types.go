package mq_client

type Exchange struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type Queue struct {
	Name    string `yaml:"name"`
	Durable bool   `yaml:"durable"`
}

type Binding struct {
	Queue      string `yaml:"queue"`
	CleanStart bool   `yaml:"clean_start"`
	Exchange   string `yaml:"exchange"`
}

type Channel struct {
	Prefetch int `yaml:"prefetch"`
}

type MQClientConfig struct {
	Exchange struct {
		Ledger       Exchange `yaml:"ledger"`
		Notification Exchange `yaml:"notification"`
		Events       Exchange `yaml:"events"`
	}
	Queue struct {
		Reconciliation  Queue `yaml:"reconciliation"`
		EventsProcessor Queue `yaml:"events_processor"`
	}
	Binding struct {
		Reconciliation  Binding `yaml:"reconciliation"`
		EventsProcessor Binding `yaml:"events_processor"`
	}
	Channel struct {
		Reconciliation Channel `yaml:"reconciliation"`
	}
}
