package configuration

func Default() *Configuration {
	return &Configuration{
		HttpAddr:    "127.0.0.1:8080",
		Dir:         "./data",
		Filename:    "stu.csv",
		ParsePolicy: "strict",
		ShowBanner:  true,
	}
}
