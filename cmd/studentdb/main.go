package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/studentdb/bootstrap"
	"github.com/fulldump/studentdb/configuration"
)

var VERSION = "dev"

var banner = `
     _             _            _     _ _     
 ___| |_ _   _  __| | ___ _ __ | |_ __| | |__  
/ __| __| | | |/ _' |/ _ \ '_ \| __/ _' | '_ \ 
\__ \ |_| |_| | (_| |  __/ | | | || (_| | |_) |
|___/\__|\__,_|\__,_|\___|_| |_|\__\__,_|_.__/ 
                                 version ` + VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(c)

	if c.Version {
		fmt.Println("Version:", VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	bootstrap.VERSION = VERSION
	start, _, err := bootstrap.Bootstrap(c)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}

	start()
}
