package menu

import (
	"context"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/presentation"
)

func (m *Menu) roomActions() []action {
	return []action{
		{"Exibir Camarins", func(ctx context.Context) error { return m.show(ctx, app.DomainRooms) }},
		{"Cadastrar Camarim", m.registerRoom},
		{"Remover Camarim", m.deleteRoom},
		{"Adicionar Item", m.addRoomItem},
		{"Remover Item", m.removeRoomItem},
		{"Atualizar Camarim", m.updateRoom},
		{"Buscar Camarim por Artista", m.findRoomByArtist},
	}
}

func (m *Menu) registerRoom(ctx context.Context) error {
	m.header("Cadastrar Camarim")
	name, err := m.readText("Nome do Camarim: ")
	if err != nil {
		return err
	}
	artistID, err := m.readInt("ID do Artista (0 para nenhum): ")
	if err != nil {
		return err
	}
	id, err := m.app.RegisterRoom(ctx, name, artistID)
	if err != nil {
		return err
	}
	m.ok("Camarim cadastrado com ID: %d", id)
	return nil
}

func (m *Menu) deleteRoom(ctx context.Context) error {
	id, err := m.readInt("Digite o ID do camarim: ")
	if err != nil {
		return err
	}
	if err := m.app.DeleteRoom(ctx, id); err != nil {
		return err
	}
	m.ok("Camarim removido com sucesso!")
	return nil
}

// selectRoom reads a camarim id and fails before further prompts when the
// camarim does not exist.
func (m *Menu) selectRoom() (int, error) {
	id, err := m.readInt("ID do Camarim: ")
	if err != nil {
		return 0, err
	}
	if _, ok := m.app.Rooms.FindByID(id); !ok {
		return 0, domain.NotFound(domain.EntityCamarim, "camarim %d not found", id)
	}
	return id, nil
}

func (m *Menu) addRoomItem(ctx context.Context) error {
	roomID, err := m.selectRoom()
	if err != nil {
		return err
	}
	item, err := m.selectItem("ID do Item (do catálogo): ")
	if err != nil {
		return err
	}
	qty, err := m.readInt("Quantidade: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainRooms, "add_item", func() (int, error) {
		return roomID, m.app.Rooms.AddItem(roomID, item.ID(), item.Name(), qty)
	})
	if err != nil {
		return err
	}
	m.ok("Item adicionado ao camarim!")
	return nil
}

func (m *Menu) removeRoomItem(ctx context.Context) error {
	roomID, err := m.selectRoom()
	if err != nil {
		return err
	}
	itemID, err := m.readInt("ID do Item: ")
	if err != nil {
		return err
	}
	qty, err := m.readInt("Quantidade a remover: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainRooms, "remove_item", func() (int, error) {
		return roomID, m.app.Rooms.RemoveItem(roomID, itemID, qty)
	})
	if err != nil {
		return err
	}
	m.ok("Item removido do camarim!")
	return nil
}

func (m *Menu) updateRoom(ctx context.Context) error {
	id, err := m.selectRoom()
	if err != nil {
		return err
	}
	name, err := m.readText("Novo Nome: ")
	if err != nil {
		return err
	}
	artistID, err := m.readInt("Novo ID do Artista (0 para nenhum): ")
	if err != nil {
		return err
	}
	if err := m.app.UpdateRoom(ctx, id, name, artistID); err != nil {
		return err
	}
	m.ok("Camarim atualizado com sucesso!")
	return nil
}

func (m *Menu) findRoomByArtist(context.Context) error {
	artistID, err := m.readInt("ID do Artista: ")
	if err != nil {
		return err
	}
	r, ok := m.app.Rooms.FindByArtist(artistID)
	if !ok {
		m.warn("Nenhum camarim encontrado para este artista!")
		return nil
	}
	m.println("")
	m.print(presentation.RoomText(r))
	return nil
}
