package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	Dir               string `usage:"data directory"`
	Filename          string `usage:"student data file name inside the data directory"`
	ParsePolicy       string `usage:"what to do with non numeric values: strict (abort the load) | lenient (skip the line)"`
	Statics           string `usage:"statics directory, empty to serve the embedded page"`
	ApiKey            string `usage:"API key, empty to disable authentication"`
	ApiSecret         string `usage:"API secret"`
	EnableCompression bool   `usage:"gzip responses"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}
