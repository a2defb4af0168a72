package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/todos/bootstrap"
	"github.com/fulldump/todos/configuration"
)

var banner = `
  _            _           
 | |_ ___   __| | ___  ___ 
 | __/ _ \ / _' |/ _ \/ __|
 | || (_) | (_| | (_) \__ \
  \__\___/ \__,_|\___/|___/
              version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
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

	start, _ := bootstrap.Bootstrap(c)
	start()
}
